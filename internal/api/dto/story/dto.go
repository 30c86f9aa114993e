package story

type Scene struct {
	ID      int    `json:"id"`
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Action  string `json:"action,omitempty"`
}

type StoryResponse struct {
	Progress int    `json:"progress"`
	Scene    *Scene `json:"scene"` // null, если сцены нет
	Hidden   bool   `json:"hidden"`
	Threat   string `json:"threat"`
}
