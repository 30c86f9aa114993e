package asset

type SceneImageResponse struct {
	Screen string `json:"screen"`
	URL    string `json:"url"`
	Ready  bool   `json:"ready"` // false - заглушка загрузки
}
