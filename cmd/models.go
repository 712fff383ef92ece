package cmd

type ArgumentInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type ActionInfo struct {
	Name       string         `json:"name"`
	Arguments  []ArgumentInfo `json:"arguments,omitempty"`
	OutputType string         `json:"outputType"`
}
