package store

// Storages groups the storage used by the development directory server.
type Storages struct {
	DirectoryStorage DirectoryStorage
}

// NewStorages returns server storage backed by memory.
func NewStorages() *Storages {
	return &Storages{
		DirectoryStorage: NewMemoryDirectoryStorage(),
	}
}
