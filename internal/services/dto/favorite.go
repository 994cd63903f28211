package dto

// ToggleFavoriteResponse сообщает итоговое состояние после переключения
type ToggleFavoriteResponse struct {
	Favorited bool `json:"favorited"`
}

type CheckFavoriteResponse struct {
	IsFavorite bool `json:"is_favorite"`
}
