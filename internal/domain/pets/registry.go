package pets

import (
	"fmt"
	"sort"
)

// Registry es la colección ordenada de mascotas en memoria.
// El nombre es único; el orden de inserción se conserva para que el
// archivo serializado sea determinístico.
//
// No es seguro para uso concurrente: quien lo comparta entre goroutines
// tiene que serializar el acceso (ver adapters/storage/memory).
type Registry struct {
	items []Pet
}

// NewRegistry crea un registro vacío.
func NewRegistry() *Registry {
	return &Registry{items: make([]Pet, 0)}
}

// Add agrega una mascota al final. Si el nombre ya existe no modifica nada
// y devuelve ErrDuplicateName.
func (r *Registry) Add(name, species, owner string) error {
	if r.indexOf(name) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.items = append(r.items, Pet{Name: name, Species: species, Owner: owner})
	return nil
}

// Delete quita el primer registro con ese nombre. Si no existe, no hace nada.
func (r *Registry) Delete(name string) {
	i := r.indexOf(name)
	if i < 0 {
		return
	}
	r.items = append(r.items[:i:i], r.items[i+1:]...)
}

// Owner devuelve el dueño de la mascota o ErrNotFound.
func (r *Registry) Owner(name string) (string, error) {
	p, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return p.Owner, nil
}

// Get devuelve el registro completo o ErrNotFound.
func (r *Registry) Get(name string) (Pet, error) {
	i := r.indexOf(name)
	if i < 0 {
		return Pet{}, ErrNotFound
	}
	return r.items[i], nil
}

// Species devuelve las especies distintas, ordenadas.
func (r *Registry) Species() []string {
	return distinctSpecies(r.items)
}

// Records devuelve una copia de los registros en orden de inserción.
func (r *Registry) Records() []Pet {
	out := make([]Pet, len(r.items))
	copy(out, r.items)
	return out
}

// Len es la cantidad de mascotas registradas.
func (r *Registry) Len() int {
	return len(r.items)
}

// Replace reemplaza todo el contenido. Primero valida en un registro
// temporal; si hay nombres repetidos el registro queda como estaba.
func (r *Registry) Replace(items []Pet) error {
	next := NewRegistry()
	for _, p := range items {
		if err := next.Add(p.Name, p.Species, p.Owner); err != nil {
			return err
		}
	}
	r.items = next.items
	return nil
}

// SaveToFile escribe el registro completo como [[name, species, owner], ...].
func (r *Registry) SaveToFile(path string) error {
	b, err := EncodeJSON(r.items)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, b)
}

// LoadFromFile reemplaza el registro con el contenido del archivo.
// Ante cualquier error (lectura, formato o nombre duplicado) el registro
// no se toca.
func (r *Registry) LoadFromFile(path string) error {
	b, err := readFile(path)
	if err != nil {
		return err
	}
	items, err := DecodeJSON(b)
	if err != nil {
		return err
	}
	return r.Replace(items)
}

func (r *Registry) indexOf(name string) int {
	for i, p := range r.items {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func distinctSpecies(items []Pet) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, p := range items {
		if _, ok := seen[p.Species]; ok {
			continue
		}
		seen[p.Species] = struct{}{}
		out = append(out, p.Species)
	}
	sort.Strings(out)
	return out
}
