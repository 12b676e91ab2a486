package entity

// Snapshot es el contenido completo exportado del store: órdenes + usuarios +
// configuración. Es el documento de respaldo y el cuerpo de la sincronización.
//
// En la importación solo se reemplazan las colecciones presentes en el
// documento: un campo nil (clave ausente o null en el JSON) deja la colección
// local intacta, igual que hacía el importador legado.
type Snapshot struct {
	Orders   []ServiceOrder   `json:"orders"`
	Users    []User           `json:"users"`
	Settings *CompanySettings `json:"settings"`
}

// Empty indica si el snapshot no trae ninguna colección (documento sin claves
// conocidas); importarlo sería un no-op y casi siempre señala un payload erróneo.
func (s Snapshot) Empty() bool {
	return s.Orders == nil && s.Users == nil && s.Settings == nil
}
