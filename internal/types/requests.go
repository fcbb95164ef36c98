package types

// Request payloads shared between the HTTP layer (binding tags) and the
// services that consume them.

type RegisterRequest struct {
	FirstName   string `json:"firstName" binding:"required,min=1,max=80"`
	LastName    string `json:"lastName" binding:"required,min=1,max=80"`
	CountryCode string `json:"countryCode" binding:"required,len=2,alpha"`
	PhonePrefix string `json:"phonePrefix" binding:"required,startswith=+,min=2,max=6"`
	PhoneNumber string `json:"phoneNumber" binding:"required,numeric,min=5,max=20"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72"`
}

type UpdateProfileRequest struct {
	Bio             *string        `json:"bio" binding:"omitempty,max=240"`
	Website         NullableString `json:"website"`
	Languages       *[]string      `json:"languages"`
	Skills          *[]string      `json:"skills" binding:"omitempty,max=5"`
	Address         *string        `json:"address" binding:"omitempty,max=255"`
	Region          *string        `json:"region" binding:"omitempty,max=100"`
	Country         *string        `json:"country" binding:"omitempty,len=2,alpha"`
	ServiceRadiusKm *int           `json:"serviceRadiusKm" binding:"omitempty,min=0"`
}

type ListDishesQuery struct {
	Categoria string `form:"categoria" binding:"omitempty,oneof=ANTIPASTO PRIMO_PIATTO PIATTO_PRINCIPALE DESSERT ALTRO"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type CreateDishRequest struct {
	NomePiatto  string  `json:"nomePiatto" binding:"required,min=1,max=120"`
	Categoria   string  `json:"categoria" binding:"required,oneof=ANTIPASTO PRIMO_PIATTO PIATTO_PRINCIPALE DESSERT ALTRO"`
	Descrizione *string `json:"descrizione" binding:"omitempty,max=500"`
	FoodType    string  `json:"foodType" binding:"required,oneof=CARNE VERDURA PESCE"`
}

type UpdateDishRequest struct {
	NomePiatto  *string        `json:"nomePiatto" binding:"omitempty,min=1,max=120"`
	Categoria   *string        `json:"categoria" binding:"omitempty,oneof=ANTIPASTO PRIMO_PIATTO PIATTO_PRINCIPALE DESSERT ALTRO"`
	Descrizione NullableString `json:"descrizione"`
	FoodType    *string        `json:"foodType" binding:"omitempty,oneof=CARNE VERDURA PESCE"`
}

type CreateMenuRequest struct {
	Nome         string   `json:"nome" binding:"required,min=1,max=120"`
	Descrizione  *string  `json:"descrizione" binding:"omitempty,max=500"`
	ImageURL     *string  `json:"imageUrl"`
	ImagePath    *string  `json:"imagePath"`
	Balance      string   `json:"balance" binding:"required,oneof=GUSTOSA EQUILIBRATO LEGGERA"`
	CuisineTypes []string `json:"cuisineTypes" binding:"omitempty,dive,oneof=LOCALE TRADIZIONALE CREATIVA FUSION GOURMET VEGETARIANA INTERNAZIONALE STAGIONALE"`
}

type UpdateMenuRequest struct {
	Nome         *string        `json:"nome" binding:"omitempty,min=1,max=120"`
	Descrizione  NullableString `json:"descrizione"`
	ImageURL     NullableString `json:"imageUrl"`
	ImagePath    NullableString `json:"imagePath"`
	Balance      *string        `json:"balance" binding:"omitempty,oneof=GUSTOSA EQUILIBRATO LEGGERA"`
	CuisineTypes *[]string      `json:"cuisineTypes" binding:"omitempty,dive,oneof=LOCALE TRADIZIONALE CREATIVA FUSION GOURMET VEGETARIANA INTERNAZIONALE STAGIONALE"`
}

type AddMenuDishRequest struct {
	DishID string `json:"dishId" binding:"required,uuid"`
	Ordine *int   `json:"ordine" binding:"omitempty,min=0"`
}

type UpdateMenuDishRequest struct {
	Ordine *int `json:"ordine" binding:"omitempty,min=0"`
}

type ReorderItem struct {
	ID     string `json:"id" binding:"required,uuid"`
	Ordine int    `json:"ordine" binding:"min=0"`
}

type ReorderMenuDishesRequest struct {
	Items []ReorderItem `json:"items" binding:"required,min=1,dive"`
}

type CreateDishPhotoRequest struct {
	ImageURL    string  `json:"imageUrl" binding:"required,url"`
	Description *string `json:"description" binding:"omitempty,max=240"`
	ImageWidth  *int    `json:"imageWidth" binding:"omitempty,min=1"`
	ImageHeight *int    `json:"imageHeight" binding:"omitempty,min=1"`
}

type UpdateDishPhotoRequest struct {
	Description NullableString `json:"description"`
}

type CreateInquiryRequest struct {
	ChefID  *string `json:"chefId" binding:"omitempty,uuid"`
	Name    string  `json:"name" binding:"required,min=1,max=120"`
	Email   string  `json:"email" binding:"required,email"`
	Message string  `json:"message" binding:"required,min=1,max=2000"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open closed"`
}
