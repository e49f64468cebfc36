package domain

// Suite is the loaded suite configuration.
type Suite struct {
	// Root is the directory containing the configuration file.
	Root string
	// TmpRoot is the default root under which previous runs are searched.
	TmpRoot string
	// Applications are the configured applications in declaration order.
	Applications []*Application
}

// Application returns the application with the given name.
func (s *Suite) Application(name string) (*Application, bool) {
	for _, app := range s.Applications {
		if app.Name == name {
			return app, true
		}
	}
	return nil, false
}
