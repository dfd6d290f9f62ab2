package validation

// Touched is the set of fields the user has interacted with.
type Touched map[Field]bool

// TouchAll returns a set with every form field marked.
func TouchAll() Touched {
	t := make(Touched, len(Fields))
	for _, f := range Fields {
		t[f] = true
	}
	return t
}

// Result maps each failing field to its error.
type Result struct {
	Errors map[Field]FieldError
}

// Valid reports whether no field failed.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Visible returns the errors of touched fields only.
func (r Result) Visible(touched Touched) map[Field]FieldError {
	out := make(map[Field]FieldError, len(r.Errors))
	for f, e := range r.Errors {
		if touched[f] {
			out[f] = e
		}
	}
	return out
}
