package model

import "github.com/a-bouts/angle-server/angle"

type Value struct {
	Value float64 `json:"value"`
}

type Sign struct {
	Value int `json:"value"`
}

type Bool struct {
	Value bool `json:"value"`
}

type Name struct {
	Value string `json:"value"`
}

type Error struct {
	Error string `json:"error"`
}

type PointsRequest struct {
	From angle.Point `json:"from"`
	To   angle.Point `json:"to"`
}

type Points struct {
	Angle           float64 `json:"angle"`
	Distance        float64 `json:"distance"`
	DistanceSquared float64 `json:"distanceSquared"`
	Direction       string  `json:"direction"`
}

type Wind struct {
	File      string   `json:"file"`
	Direction float64  `json:"direction"`
	Compass   float64  `json:"compass"`
	Name      string   `json:"name"`
	Speed     float64  `json:"speed"`
	Twa       *float64 `json:"twa,omitempty"`
}
