package category

// defaultEntry pairs a key with its shipped category so the built-in set
// keeps a stable order.
type defaultEntry struct {
	key string
	cat Category
}

// builtinDefaults returns the shipped word banks in display order. Callers
// must clone a category before mutating it.
func builtinDefaults() []defaultEntry {
	return []defaultEntry{
		{"animales", Category{Emoji: "🐾", Name: "Animales", Words: []string{
			"perro", "gato", "elefante", "jirafa", "delfín", "tiburón",
			"águila", "serpiente", "caballo", "león", "tigre", "pingüino",
			"canguro", "búho", "lobo", "zorro", "tortuga", "pulpo",
		}}},
		{"comida", Category{Emoji: "🍕", Name: "Comida", Words: []string{
			"pizza", "paella", "tortilla", "empanada", "croqueta", "churros",
			"helado", "hamburguesa", "sushi", "tacos", "gazpacho", "lasaña",
			"ensalada", "chocolate", "queso", "sopa", "arroz", "guacamole",
		}}},
		{"objetos", Category{Emoji: "🧰", Name: "Objetos", Words: []string{
			"paraguas", "tijeras", "espejo", "almohada", "linterna", "brújula",
			"martillo", "escalera", "candado", "reloj", "mochila", "termo",
			"cuchara", "peine", "llavero", "ventilador", "enchufe", "sombrilla",
		}}},
		{"lugares", Category{Emoji: "🗺️", Name: "Lugares", Words: []string{
			"playa", "museo", "aeropuerto", "hospital", "biblioteca", "estadio",
			"mercado", "faro", "castillo", "desierto", "selva", "volcán",
			"cine", "gimnasio", "peluquería", "gasolinera", "acuario", "catedral",
		}}},
		{"deportes", Category{Emoji: "⚽", Name: "Deportes", Words: []string{
			"fútbol", "baloncesto", "tenis", "natación", "ciclismo", "boxeo",
			"ajedrez", "esgrima", "surf", "escalada", "golf", "rugby",
			"atletismo", "judo", "esquí", "remo", "voleibol", "bádminton",
		}}},
		{"profesiones", Category{Emoji: "🧑‍🍳", Name: "Profesiones", Words: []string{
			"bombero", "enfermera", "arquitecto", "panadero", "fontanero", "abogada",
			"piloto", "carpintero", "astronauta", "veterinaria", "electricista", "peluquero",
			"jardinero", "policía", "taxista", "profesor", "cocinera", "fotógrafo",
		}}},
		{"peliculas", Category{Emoji: "🎬", Name: "Películas", Words: []string{
			"Titanic", "Matrix", "Avatar", "Casablanca", "Gladiator", "Rocky",
			"Tiburón", "Frozen", "Shrek", "Alien", "Psicosis", "Amélie",
			"Coco", "Up", "Interstellar", "Vértigo", "Grease", "Jumanji",
		}}},
	}
}

// defaultFor returns the shipped content of a built-in key.
func defaultFor(key string) (Category, bool) {
	for _, entry := range builtinDefaults() {
		if entry.key == key {
			return entry.cat, true
		}
	}
	return Category{}, false
}
