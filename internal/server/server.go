package server

import (
	"net/http"

	"rdfpoker/internal/config"
	"rdfpoker/internal/sse"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type Server struct {
	db     *gorm.DB
	cfg    config.Config
	broker *sse.Broker
	logger *log.Logger
}

func New(conn *gorm.DB, cfg config.Config, logger *log.Logger) *Server {
	return &Server{
		db:     conn,
		cfg:    cfg,
		broker: sse.NewBroker(logger),
		logger: logger,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/state", s.handleCreateGame)
	mux.HandleFunc("GET /api/state/{gameStateId}", s.handleGetState)
	mux.HandleFunc("GET /api/state/phase/{gameStateId}", s.handleGetPhase)
	mux.HandleFunc("GET /api/state/turn/{gameStateId}", s.handleGetTurn)
	mux.HandleFunc("GET /api/state/playedCards/{gameStateId}", s.handleGetPlayedCards)
	mux.HandleFunc("PUT /api/state", s.handleAdvanceState)
	mux.HandleFunc("POST /api/card", s.handleAddCard)
	mux.HandleFunc("PUT /api/card", s.handleUpdateCard)
	mux.HandleFunc("DELETE /api/card/{cardId}", s.handleDeleteCard)
	mux.HandleFunc("POST /api/card/play", s.handlePlayCard)
	mux.HandleFunc("GET /api/player/{playerId}", s.handleGetPlayer)
	mux.HandleFunc("POST /api/player", s.handleCreatePlayer)
	mux.HandleFunc("PUT /api/player", s.handleUpdatePlayer)
	mux.HandleFunc("POST /api/player/bet", s.handleBetChip)
	mux.HandleFunc("POST /api/player/dealer-swap", s.handleSwapDealers)
	mux.HandleFunc("GET /api/rules/{gameStateId}", s.handleGetRules)
	mux.HandleFunc("PUT /api/rules", s.handleUpdateRules)
	mux.HandleFunc("GET /api/admin/states", s.handleAdminStates)
	mux.HandleFunc("GET /api/receive/{gameStateId}", s.handleReceive)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}
