package user

// Request is the body of POST, PUT and PATCH. Absent JSON fields stay nil.
type Request struct {
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	BirthDate *string `json:"birthDate"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
}
