//go:generate go run go.uber.org/mock/mockgen -source=ride.go -destination=../mocks/mock_ride_catalog.go -package=mocks
package repositories

import (
	"github.com/samber/lo"

	"github.com/joaogpereira/UniDrive/domain"
	"github.com/joaogpereira/UniDrive/errors"
)

type IRideCatalog interface {
	FindRide(id string) (domain.RideSummary, error)
	ListRegion(slug string) []domain.RideSummary
	Regions() []domain.Region
}

// RideCatalog is the read-only ride collaborator. The dataset is fixed at
// construction; the chat core never mutates it.
type RideCatalog struct {
	regions []domain.Region
	byID    map[string]domain.RideSummary
	bySlug  map[string][]domain.RideSummary
}

func NewRideCatalog() *RideCatalog {
	catalog := &RideCatalog{
		regions: []domain.Region{
			{Slug: "asa-norte", Name: "Asa Norte"},
			{Slug: "asa-sul", Name: "Asa Sul"},
			{Slug: "lago-sul", Name: "Lago Sul"},
			{Slug: "lago-norte", Name: "Lago Norte"},
			{Slug: "taguatinga", Name: "Taguatinga"},
			{Slug: "guara", Name: "Guará"},
		},
		byID:   make(map[string]domain.RideSummary),
		bySlug: make(map[string][]domain.RideSummary),
	}
	for _, ride := range fixedRides() {
		catalog.byID[ride.ID] = ride
		catalog.bySlug[ride.Region] = append(catalog.bySlug[ride.Region], ride)
	}
	return catalog
}

func (c *RideCatalog) FindRide(id string) (domain.RideSummary, error) {
	ride, ok := c.byID[id]
	if !ok {
		return domain.RideSummary{}, errors.ErrRideNotFound
	}
	return ride, nil
}

func (c *RideCatalog) ListRegion(slug string) []domain.RideSummary {
	return c.bySlug[slug]
}

func (c *RideCatalog) Regions() []domain.Region {
	return lo.Map(c.regions, func(r domain.Region, _ int) domain.Region { return r })
}

func fixedRides() []domain.RideSummary {
	return []domain.RideSummary{
		{ID: "1", Region: "asa-norte", From: "UnB", To: "Shopping Conjunto Nacional", Date: "2023-05-20", Time: "14:30", DriverID: "driver-1", DriverName: "Carlos Silva", Rating: 4.8, Price: 15, SeatCount: 3},
		{ID: "2", Region: "asa-norte", From: "Praça do Relógio", To: "Parque da Cidade", Date: "2023-05-20", Time: "16:45", DriverID: "driver-2", DriverName: "Maria Oliveira", Rating: 4.5, Price: 12, SeatCount: 2},
		{ID: "3", Region: "asa-norte", From: "Biblioteca Nacional", To: "Setor Comercial Norte", Date: "2023-05-21", Time: "08:15", DriverID: "driver-3", DriverName: "João Pereira", Rating: 4.9, Price: 18, SeatCount: 1},
		{ID: "4", Region: "asa-sul", From: "Shopping Pátio Brasil", To: "Aeroporto", Date: "2023-05-20", Time: "10:00", DriverID: "driver-4", DriverName: "Ana Luiza", Rating: 4.7, Price: 25, SeatCount: 2},
		{ID: "5", Region: "asa-sul", From: "Setor Bancário Sul", To: "Setor Hoteleiro Sul", Date: "2023-05-20", Time: "12:30", DriverID: "driver-5", DriverName: "Rafael Costa", Rating: 4.6, Price: 10, SeatCount: 4},
		{ID: "6", Region: "asa-sul", From: "CCBB", To: "Esplanada dos Ministérios", Date: "2023-05-21", Time: "09:00", DriverID: "driver-6", DriverName: "Juliana Mendes", Rating: 4.8, Price: 15, SeatCount: 3},
		{ID: "7", Region: "asa-sul", From: "Parque da Cidade", To: "CLS 205/206", Date: "2023-05-22", Time: "17:30", DriverID: "driver-7", DriverName: "Marcos Paulo", Rating: 4.4, Price: 13, SeatCount: 2},
		{ID: "8", Region: "lago-sul", From: "Pontão do Lago Sul", To: "Aeroporto", Date: "2023-05-20", Time: "11:15", DriverID: "driver-8", DriverName: "Fernanda Lima", Rating: 4.9, Price: 30, SeatCount: 3},
		{ID: "9", Region: "lago-sul", From: "Jardim Botânico", To: "Centro Comercial Gilberto Salomão", Date: "2023-05-21", Time: "15:00", DriverID: "driver-9", DriverName: "Lucas Mendonça", Rating: 4.7, Price: 22, SeatCount: 1},
		{ID: "10", Region: "lago-norte", From: "Deck Norte", To: "Asa Norte", Date: "2023-05-20", Time: "13:30", DriverID: "driver-10", DriverName: "Beatriz Campos", Rating: 4.5, Price: 20, SeatCount: 2},
		{ID: "11", Region: "lago-norte", From: "Península dos Ministros", To: "Centro", Date: "2023-05-22", Time: "09:45", DriverID: "driver-11", DriverName: "Gustavo Almeida", Rating: 4.6, Price: 25, SeatCount: 4},
		{ID: "12", Region: "taguatinga", From: "Taguatinga Shopping", To: "Rodoviária do Plano Piloto", Date: "2023-05-20", Time: "07:00", DriverID: "driver-12", DriverName: "Ricardo Souza", Rating: 4.8, Price: 15, SeatCount: 3},
		{ID: "13", Region: "taguatinga", From: "Taguacenter", To: "Setor Comercial Sul", Date: "2023-05-21", Time: "08:30", DriverID: "driver-13", DriverName: "Patrícia Vieira", Rating: 4.4, Price: 18, SeatCount: 2},
		{ID: "14", Region: "taguatinga", From: "Águas Claras", To: "UnB", Date: "2023-05-22", Time: "06:45", DriverID: "driver-14", DriverName: "Eduardo Martins", Rating: 4.7, Price: 20, SeatCount: 1},
		{ID: "15", Region: "guara", From: "Guará I", To: "Setor Bancário Sul", Date: "2023-05-20", Time: "07:30", DriverID: "driver-15", DriverName: "Roberta Dias", Rating: 4.6, Price: 15, SeatCount: 2},
		{ID: "16", Region: "guara", From: "Guará II", To: "Esplanada dos Ministérios", Date: "2023-05-21", Time: "06:30", DriverID: "driver-16", DriverName: "Daniel Oliveira", Rating: 4.7, Price: 18, SeatCount: 3},
	}
}
