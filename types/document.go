package types

// Upload is a single document received from a client, identified by
// its original filename.
type Upload struct {
	Name string
	Data []byte
}
