package response

type ResponseData struct {
	Ec    int    `json:"ec"`
	Msg   string `json:"msg,omitempty"`
	Error string `json:"error,omitempty"`
	Total *int   `json:"total,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// WithData returns a copy of r carrying data.
func (r ResponseData) WithData(data any) ResponseData {
	r.Data = data
	return r
}

// WithError returns a copy of r carrying the error text.
func (r ResponseData) WithError(err error) ResponseData {
	if err != nil {
		r.Error = err.Error()
	}
	return r
}
