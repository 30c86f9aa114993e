package model

// SceneImage Картинка фона для экрана
type SceneImage struct {
	Screen string
	URL    string
	Ready  bool // false, пока показывается заглушка загрузки
}

// AssetScreen Описание фона экрана
type AssetScreen struct {
	Screen      string
	Key         string
	Prompt      string
	Placeholder string // Показывается, пока картинка генерируется
}
