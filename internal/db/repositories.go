package db

import "gorm.io/gorm"

type Repositories struct {
	Periods *PeriodRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Periods: NewPeriodRepository(database),
	}
}
