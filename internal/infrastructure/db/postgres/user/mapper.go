package user

import (
	domain "user-registry-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		UUID:      model.UUID,
		Email:     model.Email,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		BirthDate: model.BirthDate,
		Address:   model.Address,
		Phone:     model.Phone,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		DeletedAt: model.DeletedAt,
	}

	return u
}

func fromDBModels(models Users) domain.Users {
	us := make(domain.Users, len(models))
	for idx, u := range models {
		us[idx] = fromDBModel(u)
	}

	return us
}
