package server

import (
	"rdfpoker/internal/db"

	"github.com/google/uuid"
)

// TurnResponse names the player whose turn it is. Both fields are null when
// no player holds a card in hand.
type TurnResponse struct {
	PlayerID       *uuid.UUID `json:"playerId"`
	PlayerNickName *string    `json:"playerNickName"`
}

// StateResponse is the full snapshot a client needs to render a game.
type StateResponse struct {
	CardsOnTable  []db.Card    `json:"cardsOnTable"`
	CardDisplayed *db.Card     `json:"cardDisplayed"`
	Phase         db.Phase     `json:"phase"`
	Rules         db.Rules     `json:"rules"`
	WhoseTurn     TurnResponse `json:"whoseTurn"`
}

type createdGameStateResponse struct {
	ID uuid.UUID `json:"id"`
}

type currentPhaseResponse struct {
	Phase db.Phase `json:"phase"`
}

type gameStateAdvanceRequest struct {
	ID          uuid.UUID `json:"id"`
	PhaseString string    `json:"phaseString"`
}

type cardAddRequest struct {
	PlayerID uuid.UUID `json:"playerId"`
}

type cardUpdateRequest struct {
	ID         uuid.UUID      `json:"id"`
	Content    *string        `json:"content"`
	CardStatus *db.CardStatus `json:"cardStatus"`
	NumChips   *int           `json:"numChips"`
}

type cardPlayRequest struct {
	ID uuid.UUID `json:"id"`
}

type playerCreateRequest struct {
	GameStateID uuid.UUID `json:"gameStateId"`
	NickName    *string   `json:"nickName"`
	IsDealer    bool      `json:"isDealer"`
}

type playerUpdateRequest struct {
	ID       uuid.UUID `json:"id"`
	NumChips *int      `json:"numChips"`
	NickName *string   `json:"nickName"`
}

type playerBetRequest struct {
	PlayerID uuid.UUID `json:"playerId"`
	CardID   uuid.UUID `json:"cardId"`
}

type dealerSwapRequest struct {
	CurrentDealerID uuid.UUID `json:"currentDealerId"`
	FutureDealerID  uuid.UUID `json:"futureDealerId"`
}

type rulesUpdateRequest struct {
	GameStateID                       uuid.UUID `json:"gameStateId"`
	Prompt                            *string   `json:"prompt"`
	MaxCardsInHand                    *int      `json:"maxCardsInHand"`
	ChipsAllottedPerPlayer            *int      `json:"chipsAllottedPerPlayer"`
	PreparationTimerDuration          *int      `json:"preparationTimerDuration"`
	TurnTimerDuration                 *int      `json:"turnTimerDuration"`
	BettingTimerDuration              *int      `json:"bettingTimerDuration"`
	MinChipsForCardPostGameDiscussion *int      `json:"minChipsForCardPostGameDiscussion"`
	MinCardContribution               *int      `json:"minCardContribution"`
}
