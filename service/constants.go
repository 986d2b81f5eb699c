package service

const (
	MaxTermYears      = 50 // longest term the comparison evaluates
	MaxTermRangeYears = 30 // widest min..max range per comparison request

	cacheKeyPrefix = "fincalc:v1"
)
