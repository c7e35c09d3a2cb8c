package service

import "github.com/benbeisheim/consolechess/internal/model"

type Player struct {
	ID    string
	Color model.Color
}

type ClientPlayer struct {
	ID    string `json:"name"`
	Color string `json:"color"`
}

func (p *Player) client() ClientPlayer {
	if p == nil {
		return ClientPlayer{}
	}
	return ClientPlayer{ID: p.ID, Color: p.Color.String()}
}
