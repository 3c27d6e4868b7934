package store

// Storages groups every persistence dependency of the service layer.
type Storages struct {
	UserRepository UserRepository
	SessionStorage SessionStorage
}
