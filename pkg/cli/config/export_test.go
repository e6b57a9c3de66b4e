package config

// SetPath sets the routes file path for tests
func (r *Routes) SetPath(path string) {
	r.path = path
}
