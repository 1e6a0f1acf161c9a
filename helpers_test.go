package keep

// service is a reference-type fixture. Identity assertions use
// assert.Same on *service.
type service struct {
	name string
}

// settings is a value-semantics fixture, always passed by copy.
type settings struct {
	name string
}
