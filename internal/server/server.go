package server

// Server joins the HTTP servers of the dashboard: the page with its chart
// images and the JSON API.
type Server struct {
	PageServer
	APIServer
}

func NewServer(
	pageServer PageServer,
	apiServer APIServer,
) Server {
	return Server{
		PageServer: pageServer,
		APIServer:  apiServer,
	}
}
