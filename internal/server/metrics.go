package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricGamesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfpoker_games_created_total",
		Help: "Games created.",
	})
	metricPlayersCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rdfpoker_players_created_total",
		Help: "Players created, tagged by game.",
	}, []string{"game"})
	metricCardsPlayed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rdfpoker_cards_played_total",
		Help: "Cards played, tagged by game.",
	}, []string{"game"})
)
