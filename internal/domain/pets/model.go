package pets

// Pet es el registro de una mascota del barrio: nombre, especie y dueño.
// Se maneja por valor; no hay forma de modificarlo una vez creado
// (para "cambiarlo" se borra y se vuelve a agregar).
type Pet struct {
	Name    string
	Species string
	Owner   string
}
