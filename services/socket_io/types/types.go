package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// PlayerSession binds a socket connection to the room and player it joined
// as. A connection belongs to at most one room at a time.
type PlayerSession struct {
	RoomCode   string
	PlayerID   string
	PlayerName string
}

// SocketServer is a struct that contains the socket.io server and a map of
// socket id -> player session, used to turn a dropped connection into a
// leave for the right player.
type SocketServer struct {
	Sio_server *socket.Server
	Sessions   map[socket.SocketId]PlayerSession
	mutex      sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		Sessions: make(map[socket.SocketId]PlayerSession),
	}
}

func (s *SocketServer) SetSession(id socket.SocketId, session PlayerSession) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Sessions[id] = session
}

func (s *SocketServer) GetSession(id socket.SocketId) (PlayerSession, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	session, exists := s.Sessions[id]
	return session, exists
}

func (s *SocketServer) RemoveSession(id socket.SocketId) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.Sessions, id)
}
