package server

import (
	"rdfpoker/internal/db"
)

// whichPlayersTurn derives the turn owner from already-loaded state: among
// the game's players holding at least one INHAND card, the one with the
// smallest LastTurnCompleted timestamp. Equal timestamps resolve to the
// earlier-created player, since loadGameState orders players by creation.
// Returns nil when no player holds an INHAND card.
func whichPlayersTurn(game *db.GameState) *db.Player {
	var next *db.Player
	for i := range game.Players {
		player := &game.Players[i]
		if !holdsCardInHand(player) {
			continue
		}
		if next == nil || player.LastTurnCompleted.Before(next.LastTurnCompleted) {
			next = player
		}
	}
	return next
}

func holdsCardInHand(player *db.Player) bool {
	for i := range player.Cards {
		if player.Cards[i].CardStatus == db.CardInHand {
			return true
		}
	}
	return false
}

func turnResponseFor(player *db.Player) TurnResponse {
	if player == nil {
		return TurnResponse{}
	}
	id := player.ID
	return TurnResponse{PlayerID: &id, PlayerNickName: player.NickName}
}
