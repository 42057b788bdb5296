package game

import (
	models "Melodia/models/game"
)

// Roster rules: the first player to join a room hosts it; when the host
// leaves, the first remaining player in join order takes over.

func (room *Room) addPlayerLocked(player models.Player) models.Player {
	player.IsHost = len(room.Players) == 0
	player.Score = 0
	p := player
	room.Players = append(room.Players, &p)
	return p
}

// removePlayerLocked takes a player out of the roster. Returns false when the
// player wasn't there (second leave after a disconnect already handled it).
func (room *Room) removePlayerLocked(playerID string) (removed bool, newHost *models.Player) {
	idx := -1
	for i, p := range room.Players {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	wasHost := room.Players[idx].IsHost
	room.Players = append(room.Players[:idx], room.Players[idx+1:]...)
	delete(room.Progress, playerID)

	if wasHost && len(room.Players) > 0 {
		room.Players[0].IsHost = true
		host := *room.Players[0]
		newHost = &host
	}
	return true, newHost
}

func (room *Room) findPlayerLocked(playerID string) *models.Player {
	for _, p := range room.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}
