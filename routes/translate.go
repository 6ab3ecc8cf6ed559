package routes

import (
	"encoding/json"
	"habitalink-server/models"
	"habitalink-server/utils"
	"os"
	"strings"

	"github.com/kataras/iris/v12"
)

// The mobile client has shipped with several field vocabularies over time.
// listingAliases is the single table both directions consult: inbound
// payloads may use the canonical storage name or any alias, and outbound
// responses re-emit every name so any client version finds the one it
// expects.
var listingAliases = map[string][]string{
	"desc_inmueble":    {"descripcion"},
	"num_habitaciones": {"dormitorios"},
	"num_baños":        {"banos"},
	"m2":               {"superficie"},
}

// firstValue returns the first non-empty value among the canonical field
// name and its aliases. The getter abstracts over form/body access.
func firstValue(get func(string) string, canonical string) string {
	if v := get(canonical); v != "" {
		return v
	}
	for _, alias := range listingAliases[canonical] {
		if v := get(alias); v != "" {
			return v
		}
	}
	return ""
}

// numericValue resolves a numeric field through the alias table, coercing
// with the sanitizer so "1.500€" or "120m2" still land as numbers.
func numericValue(get func(string) string, canonical string) float64 {
	return utils.SanitizeNumber(firstValue(get, canonical))
}

// parseCaracteristicas decodes the JSON-encoded string the client sends.
// Invalid JSON wraps the raw value as a single-element list instead of
// failing the request.
func parseCaracteristicas(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var caracs []string
	if err := json.Unmarshal([]byte(raw), &caracs); err != nil {
		return []string{raw}
	}
	return caracs
}

func publicBaseURL() string {
	if base := os.Getenv("PUBLIC_BASE_URL"); base != "" {
		return base
	}
	return "http://localhost:3000"
}

// absoluteImageURL rewrites a stored relative path to a fully qualified
// URL; references that already carry a scheme pass through untouched.
func absoluteImageURL(img string) string {
	if strings.HasPrefix(img, "http") {
		return img
	}
	return publicBaseURL() + img
}

func absoluteImageURLs(imgs []string) []string {
	out := make([]string, 0, len(imgs))
	for _, img := range imgs {
		out = append(out, absoluteImageURL(img))
	}
	return out
}

// propiedadResponse shapes a listing for any read path: every canonical
// field plus every alias, image paths rewritten to absolute URLs, and the
// first image surfaced as the cover.
func propiedadResponse(p *models.Propiedad) iris.Map {
	imagenes := absoluteImageURLs(p.ImagenesList())

	res := iris.Map{
		"id":              p.ID,
		"id_usuario":      p.UsuarioID,
		"titulo":          p.Titulo,
		"precio":          p.Precio,
		"tipo":            p.Tipo,
		"estado":          p.Estado,
		"ubicacion":       p.Ubicacion,
		"latitude":        p.Latitude,
		"longitude":       p.Longitude,
		"caracteristicas": p.CaracteristicasList(),
		"imagenes":        imagenes,
		"fecha_creacion":  p.CreatedAt,
	}

	aliased := map[string]interface{}{
		"desc_inmueble":    p.DescInmueble,
		"num_habitaciones": p.NumHabitaciones,
		"num_baños":        p.NumBanos,
		"m2":               p.M2,
	}
	for canonical, value := range aliased {
		res[canonical] = value
		for _, alias := range listingAliases[canonical] {
			res[alias] = value
		}
	}

	if len(imagenes) > 0 {
		res["imagenPrincipal"] = imagenes[0]
	} else {
		res["imagenPrincipal"] = nil
	}

	return res
}
