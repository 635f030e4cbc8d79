// Package workflow define la máquina de estados de una orden de producción:
// las dos secuencias de trabajo (VPVC y VC), los estados laterales
// ANULADA/ARCHIVADA y la legalidad de cada transición según rol.
package workflow

import (
	"errors"
	"strings"
)

// Estado is the workflow status of an order. ANULADA and ARCHIVADA are
// side-states reachable from anywhere but outside the ordered sequences.
type Estado string

const (
	EstadoVentas       Estado = "VENTAS"
	EstadoProduccion   Estado = "PRODUCCION"
	EstadoPorRetirar   Estado = "VENTAS POR RETIRAR"
	EstadoContabilidad Estado = "CONTABILIDAD"
	EstadoFinalizada   Estado = "FINALIZADA"
	EstadoAnulada      Estado = "ANULADA"
	EstadoArchivada    Estado = "ARCHIVADA"
)

// Estados lists every status, in display order (used by list filters).
var Estados = []Estado{
	EstadoVentas, EstadoProduccion, EstadoPorRetirar,
	EstadoContabilidad, EstadoFinalizada, EstadoAnulada, EstadoArchivada,
}

// Variante selects which of the two workflow sequences an order follows.
type Variante string

const (
	VarianteVPVC Variante = "VPVC" // venta con producción, 4 pasos
	VarianteVC   Variante = "VC"   // venta corta, 2 pasos
)

var (
	secuenciaVPVC = []Estado{EstadoVentas, EstadoProduccion, EstadoPorRetirar, EstadoContabilidad, EstadoFinalizada}
	secuenciaVC   = []Estado{EstadoVentas, EstadoContabilidad, EstadoFinalizada}
)

// VarianteDe parses the workflow variant out of the free-text order type
// label chosen at creation. The "(VC)" marker selects the short flow;
// anything else is the full production flow.
func VarianteDe(tipoOrden string) Variante {
	if strings.Contains(tipoOrden, "(VC)") {
		return VarianteVC
	}
	return VarianteVPVC
}

// Secuencia returns the ordered status sequence for a variant.
// Callers must not mutate the returned slice.
func Secuencia(v Variante) []Estado {
	if v == VarianteVC {
		return secuenciaVC
	}
	return secuenciaVPVC
}

// Direccion of a compact prev/next step in list views.
type Direccion string

const (
	Siguiente Direccion = "next"
	Anterior  Direccion = "prev"
)

var (
	// ErrNoAvanza is returned when an order sits in a terminal or
	// unrecognized status and cannot move forward.
	ErrNoAvanza = errors.New("la orden está en un estado final o desconocido")
	// ErrPasoInvalido is returned for an out-of-range prev/next request.
	ErrPasoInvalido = errors.New("movimiento de estado fuera de rango")
)

func indiceEn(sec []Estado, e Estado) int {
	for i, s := range sec {
		if s == e {
			return i
		}
	}
	return -1
}

// EsLateral reports whether a status lives outside the ordered sequences.
func EsLateral(e Estado) bool {
	return e == EstadoAnulada || e == EstadoArchivada
}

// Avanzar returns the next status in the variant's sequence. It fails
// without suggesting a mutation when the current status is the last one or
// is not part of the sequence (ANULADA, ARCHIVADA, corrupt data).
func Avanzar(v Variante, actual Estado) (Estado, error) {
	sec := Secuencia(v)
	i := indiceEn(sec, actual)
	if i == -1 || i >= len(sec)-1 {
		return actual, ErrNoAvanza
	}
	return sec[i+1], nil
}

// Paso resolves the compact prev/next controls of the list views.
// Out-of-range requests and side-states produce ErrPasoInvalido.
func Paso(v Variante, actual Estado, dir Direccion) (Estado, error) {
	if EsLateral(actual) {
		return actual, ErrPasoInvalido
	}
	sec := Secuencia(v)
	i := indiceEn(sec, actual)
	if i == -1 {
		return actual, ErrPasoInvalido
	}
	switch dir {
	case Siguiente:
		if i < len(sec)-1 {
			return sec[i+1], nil
		}
	case Anterior:
		if i > 0 {
			return sec[i-1], nil
		}
	}
	return actual, ErrPasoInvalido
}
