package models

// ParamResponse is one RC parameter.
type ParamResponse struct {
	Module string `json:"module"`
	Param  string `json:"param"`
	Value  string `json:"value"`
}

// ParamsResponse lists RC parameters in the order the mux reported them.
type ParamsResponse struct {
	Params []ParamResponse `json:"params"`
	Count  int             `json:"count"`
}

// SetParamRequest sets one RC parameter. A label is set as "<label>,<shortlabel>".
type SetParamRequest struct {
	Module string `json:"module" binding:"required"`
	Param  string `json:"param" binding:"required"`
	Value  string `json:"value"`
}
