package converter

import (
	"house_fund/internal/api/dto/story"
	"house_fund/internal/model"
)

func ToStoryResponse(view model.StoryView) story.StoryResponse {
	response := story.StoryResponse{
		Progress: view.Progress,
		Hidden:   view.Hidden,
		Threat:   view.Threat,
	}
	if view.Scene != nil {
		response.Scene = &story.Scene{
			ID:      view.Scene.ID,
			Speaker: view.Scene.Speaker,
			Text:    view.Scene.Text,
			Action:  view.Scene.Action,
		}
	}
	return response
}
