package workflow

// Rol of a staff user. The value travels inside the JWT claims and gates
// every mutating operation on orders.
type Rol string

const (
	RolAdministrador Rol = "administrador"
	RolVendedor      Rol = "vendedor"
	RolProduccion    Rol = "produccion"
	RolContabilidad  Rol = "contabilidad"
)

// Roles lists every valid role.
var Roles = []Rol{RolAdministrador, RolVendedor, RolProduccion, RolContabilidad}

// EsValido reports whether r names a known role.
func (r Rol) EsValido() bool {
	for _, v := range Roles {
		if r == v {
			return true
		}
	}
	return false
}

// PuedeMover decides whether a role may step an order in the given
// direction from its current status. The administrator moves anything;
// the salesperson only pushes forward through the sales-side statuses;
// accounting only pushes forward out of CONTABILIDAD; production never
// moves orders from list views.
func PuedeMover(rol Rol, actual Estado, dir Direccion) bool {
	if EsLateral(actual) {
		return false
	}
	switch rol {
	case RolAdministrador:
		return true
	case RolVendedor:
		if dir != Siguiente {
			return false
		}
		return actual == EstadoVentas || actual == EstadoProduccion || actual == EstadoPorRetirar
	case RolContabilidad:
		return dir == Siguiente && actual == EstadoContabilidad
	default:
		return false
	}
}

// PuedeEditar gates the edit form: production staff adjust nothing but the
// product checklist, and nobody edits voided or archived orders.
func PuedeEditar(rol Rol, actual Estado) bool {
	if EsLateral(actual) {
		return false
	}
	return rol == RolAdministrador || rol == RolVendedor || rol == RolContabilidad
}

// PuedeCrear gates order creation.
func PuedeCrear(rol Rol) bool {
	return rol == RolAdministrador || rol == RolVendedor
}

// PuedeAnular gates the void action.
func PuedeAnular(rol Rol) bool {
	return rol == RolAdministrador
}

// PuedeEliminar gates permanent removal. The status check is separate:
// only ANULADA orders are ever erased.
func PuedeEliminar(rol Rol) bool {
	return rol == RolAdministrador
}

// PuedeArchivar allows archiving a finished order.
func PuedeArchivar(rol Rol, actual Estado) bool {
	return rol == RolAdministrador && actual == EstadoFinalizada
}

// PuedeDesarchivar returns an archived order to FINALIZADA.
func PuedeDesarchivar(rol Rol, actual Estado) bool {
	return rol == RolAdministrador && actual == EstadoArchivada
}

// PuedeAlternarProducto gates the per-line-item completion checklist.
func PuedeAlternarProducto(rol Rol, actual Estado) bool {
	return rol == RolProduccion && actual == EstadoProduccion
}
