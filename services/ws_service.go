package services

import (
	"encoding/json"
	"log"

	"github.com/olahol/melody"
)

// MelodyNotificador publica eventos de invalidação no canal websocket.
// Implementa Notificador; os serviços continuam corretos sem ele (polling).
type MelodyNotificador struct {
	m *melody.Melody
}

func NewMelodyNotificador(m *melody.Melody) *MelodyNotificador {
	return &MelodyNotificador{m: m}
}

type envelopeEvento struct {
	Evento string      `json:"evento"`
	Dados  interface{} `json:"dados"`
}

func (n *MelodyNotificador) Notificar(evento string, dados interface{}) {
	payload, err := json.Marshal(envelopeEvento{Evento: evento, Dados: dados})
	if err != nil {
		log.Printf("Erro ao serializar evento %s: %v", evento, err)
		return
	}
	if err := n.m.Broadcast(payload); err != nil {
		log.Printf("Erro ao transmitir evento %s: %v", evento, err)
	}
}
