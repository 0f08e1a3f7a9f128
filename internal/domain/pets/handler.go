package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, snapshotPath string) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", addPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Delete("/{name}", deletePetHandler(svc))
		pr.Get("/{name}/owner", getOwnerHandler(svc))
	})

	r.Get("/species", listSpeciesHandler(svc))

	// Snapshot: siempre sobre el path configurado, nunca uno que mande el cliente.
	r.Post("/snapshot/save", saveSnapshotHandler(svc, snapshotPath))
	r.Post("/snapshot/load", loadSnapshotHandler(svc, snapshotPath))
}

// addPetRequest es el cuerpo para registrar una mascota.
type addPetRequest struct {
	Name    *string `json:"name"`
	Species *string `json:"species"`
	Owner   *string `json:"owner"`
}

// petResponse representa una mascota del registro.
type petResponse struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Owner   string `json:"owner"`
}

type ownerResponse struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

// addPetHandler godoc
// @Summary Registrar mascota
// @Description Agrega una mascota al registro. El nombre debe ser único.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body addPetRequest true "Nombre, especie y dueño"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Failure 409 {string} string "duplicate pet name"
// @Router /pets [post]
func addPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Name == nil || req.Species == nil || req.Owner == nil {
			http.Error(w, "name, species and owner are required", http.StatusBadRequest)
			return
		}

		p, err := svc.Add(r.Context(), AddInput{
			Name:    *req.Name,
			Species: *req.Species,
			Owner:   *req.Owner,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrDuplicateName):
				http.Error(w, "duplicate pet name", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve todas las mascotas en orden de inserción.
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Quita la mascota con ese nombre. Si no existe no es error.
// @Tags pets
// @Param name path string true "Nombre de la mascota"
// @Success 204
// @Failure 400 {string} string "invalid pet name"
// @Failure 500 {string} string "internal error"
// @Router /pets/{name} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := nameParam(w, r)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), name); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// getOwnerHandler godoc
// @Summary Dueño de una mascota
// @Tags pets
// @Produce json
// @Param name path string true "Nombre de la mascota"
// @Success 200 {object} ownerResponse
// @Failure 400 {string} string "invalid pet name"
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /pets/{name}/owner [get]
func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := nameParam(w, r)
		if !ok {
			return
		}
		owner, err := svc.Owner(r.Context(), name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, ownerResponse{Name: name, Owner: owner})
	}
}

// listSpeciesHandler godoc
// @Summary Especies registradas
// @Description Especies distintas presentes en el registro, ordenadas alfabéticamente.
// @Tags pets
// @Produce json
// @Success 200 {array} string
// @Failure 500 {string} string "internal error"
// @Router /species [get]
func listSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Species(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// saveSnapshotHandler godoc
// @Summary Guardar snapshot
// @Description Escribe el registro completo en el archivo JSON configurado.
// @Tags snapshot
// @Success 204
// @Failure 500 {string} string "snapshot io error"
// @Router /snapshot/save [post]
func saveSnapshotHandler(svc *Service, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.SaveToFile(r.Context(), path); err != nil {
			http.Error(w, "snapshot io error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// loadSnapshotHandler godoc
// @Summary Cargar snapshot
// @Description Reemplaza el registro con el archivo JSON configurado. Si el archivo es inválido el registro no cambia.
// @Tags snapshot
// @Success 204
// @Failure 400 {string} string "snapshot format error"
// @Failure 409 {string} string "duplicate pet name"
// @Failure 500 {string} string "snapshot io error"
// @Router /snapshot/load [post]
func loadSnapshotHandler(svc *Service, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.LoadFromFile(r.Context(), path)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, ErrFormat):
			http.Error(w, "snapshot format error", http.StatusBadRequest)
		case errors.Is(err, ErrDuplicateName):
			http.Error(w, "duplicate pet name", http.StatusConflict)
		case errors.Is(err, ErrIO):
			http.Error(w, "snapshot io error", http.StatusInternalServerError)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// nameParam devuelve {name} decodificado. chi rutea sobre RawPath cuando
// existe (p.ej. un nombre con "/" llega como "a%2Fb"); si no, el param ya
// viene decodificado desde URL.Path y no hay que tocarlo.
func nameParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, true
	}
	name, err := url.PathUnescape(name)
	if err != nil {
		http.Error(w, "invalid pet name", http.StatusBadRequest)
		return "", false
	}
	return name, true
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		Name:    p.Name,
		Species: p.Species,
		Owner:   p.Owner,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
