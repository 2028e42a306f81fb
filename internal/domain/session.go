package domain

// Session явный контекст вызова: кто действует, в каком бизнесе и включён ли демо-режим.
// ActorID = 0 для анонимного клиента на публичной форме бронирования.
type Session struct {
	ActorID    int64
	BusinessID int64
	DemoMode   bool
}

// IsAnonymous true для публичных запросов
func (s Session) IsAnonymous() bool {
	return s.ActorID == 0
}
