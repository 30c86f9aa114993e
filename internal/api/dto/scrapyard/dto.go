package scrapyard

type StrikeRequest struct {
	PartID string `json:"part_id"`
}

type Part struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Health int    `json:"health"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

type YardResponse struct {
	State   string `json:"state"` // active, done
	Parts   []Part `json:"parts"`
	Removed int    `json:"removed"`
	Reward  int    `json:"reward"`
	Balance int    `json:"balance"`
	Delta   int    `json:"delta"`
}
