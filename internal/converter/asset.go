package converter

import (
	"house_fund/internal/api/dto/asset"
	"house_fund/internal/model"
)

func ToSceneImageResponse(img model.SceneImage) asset.SceneImageResponse {
	return asset.SceneImageResponse{
		Screen: img.Screen,
		URL:    img.URL,
		Ready:  img.Ready,
	}
}
