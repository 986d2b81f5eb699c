package domain

import "encoding/json"

// Envelope is the success/failure tag carried by every plan.
type Envelope struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
}

func Succeeded() Envelope { return Envelope{Success: true} }

func (e Envelope) OK() bool { return e.Success }

// Failed converts err into a failure envelope.
func Failed(err error) Envelope {
	return Envelope{Error: err.Error(), ErrorKind: KindOf(err)}
}

// marshalPlan encodes only the envelope for failures so that a failed plan
// never reports zero-valued outputs.
func marshalPlan(env Envelope, full any) ([]byte, error) {
	if !env.Success {
		return json.Marshal(env)
	}
	return json.Marshal(full)
}
