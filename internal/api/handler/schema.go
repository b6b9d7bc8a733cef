package handler

// dataResponse is the success envelope returned by every endpoint.
type dataResponse struct {
	Data any `json:"data"`
}

// errorResponse is the error envelope; errors is a string or a list of field messages.
type errorResponse struct {
	Errors any `json:"errors"`
}

// --- Auth / users ---

type registerRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName"  validate:"required,max=100"`
	Email     string `json:"email"     validate:"required,email,max=200"`
	Password  string `json:"password"  validate:"required,min=6,max=100"`
	Phone     string `json:"phone"     validate:"required,max=20"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,max=200"`
	Password string `json:"password" validate:"required,max=100"`
}

// updateUserRequest is a partial update: omitted fields stay unchanged.
type updateUserRequest struct {
	FirstName string `json:"firstName" validate:"omitempty,max=100"`
	LastName  string `json:"lastName"  validate:"omitempty,max=100"`
	Email     string `json:"email"     validate:"omitempty,email,max=200"`
	Password  string `json:"password"  validate:"omitempty,min=6,max=100"`
	Phone     string `json:"phone"     validate:"omitempty,max=20"`
}

// --- Properties ---

type propertyRequest struct {
	Name          string `json:"name"          validate:"required,max=255"`
	Type          string `json:"type"          validate:"required,max=100"`
	City          string `json:"city"          validate:"required,max=100"`
	Address       string `json:"address"       validate:"required,max=255"`
	Description   string `json:"description"   validate:"max=2000"`
	CheapestPrice int    `json:"cheapestPrice" validate:"gte=0"`
	Featured      bool   `json:"featured"`
}

type roomRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
	Price       int    `json:"price"       validate:"required,gt=0"`
	MaxPeople   int    `json:"maxPeople"   validate:"required,gt=0,max=50"`
}

type reviewRequest struct {
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=2000"`
}
