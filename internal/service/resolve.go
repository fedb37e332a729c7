package service

import (
	"github.com/google/uuid"
	"github.com/kidiezyllex/real-estate-BE/internal/domain"
)

// HomeSource names the reference a home id was resolved from.
type HomeSource string

const (
	HomeFromRecord          HomeSource = "home"
	HomeFromHomeContract    HomeSource = "home_contract"
	HomeFromServiceContract HomeSource = "service_contract"
)

// HomeResolution is either HomeResolved or HomeUnresolved.
type HomeResolution interface {
	isHomeResolution()
}

type HomeResolved struct {
	HomeID uuid.UUID
	Source HomeSource
}

type HomeUnresolved struct{}

func (HomeResolved) isHomeResolution()   {}
func (HomeUnresolved) isHomeResolution() {}

// ResolveHome picks the owning home of a payment record. An explicit home id wins,
// then the rental contract's home, then the ancillary contract's home. The contracts
// passed in must already have been loaded and checked.
func ResolveHome(homeID *uuid.UUID, homeContract, serviceContract *domain.Contract) HomeResolution {
	switch {
	case homeID != nil && *homeID != uuid.Nil:
		return HomeResolved{HomeID: *homeID, Source: HomeFromRecord}
	case homeContract != nil && homeContract.HomeID != uuid.Nil:
		return HomeResolved{HomeID: homeContract.HomeID, Source: HomeFromHomeContract}
	case serviceContract != nil && serviceContract.HomeID != uuid.Nil:
		return HomeResolved{HomeID: serviceContract.HomeID, Source: HomeFromServiceContract}
	default:
		return HomeUnresolved{}
	}
}
