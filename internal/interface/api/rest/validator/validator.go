package validator

import (
	"github.com/google/uuid"

	"user-registry-api/internal/domain/user"
	dto "user-registry-api/internal/interface/api/rest/dto/user"
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ParseDateRange turns the from/to query values into a range. An empty value
// leaves that bound nil so the range validator can report it.
func ParseDateRange(from, to string) (*user.DateRange, error) {
	r := new(user.DateRange)
	if from != "" {
		d, err := dto.ParseDate(from)
		if err != nil {
			return nil, err
		}
		r.From = &d
	}
	if to != "" {
		d, err := dto.ParseDate(to)
		if err != nil {
			return nil, err
		}
		r.To = &d
	}

	return r, nil
}
