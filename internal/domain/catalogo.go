package domain

import "time"

// Catálogos de llenado: cada tabla alimenta un desplegable del formulario.
// Los encadenados (línea → sector → programa → meta y
// política → categoría → subcategoría) se filtran por el id del padre.

type LineaEstrategica struct {
	ID        int64     `db:"id" json:"id"`
	Nombre    string    `db:"nombre_linea_estrategica" json:"nombre"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

type Sector struct {
	ID                 int64     `db:"id" json:"id"`
	IDLineaEstrategica int64     `db:"id_linea_estrategica" json:"id_linea_estrategica"`
	CodigoSector       int       `db:"codigo_sector" json:"codigo_sector"`
	NombreSector       string    `db:"nombre_sector" json:"nombre_sector"`
	CreatedAt          time.Time `db:"created_at" json:"-"`
	UpdatedAt          time.Time `db:"updated_at" json:"-"`
}

type Programa struct {
	ID             int64     `db:"id" json:"id"`
	IDSector       int64     `db:"id_sector" json:"id_sector"`
	CodigoPrograma int       `db:"codigo_programa" json:"codigo_programa"`
	NombrePrograma string    `db:"nombre_programa" json:"nombre_programa"`
	CreatedAt      time.Time `db:"created_at" json:"-"`
	UpdatedAt      time.Time `db:"updated_at" json:"-"`
}

type Meta struct {
	ID                      int64  `db:"id" json:"id"`
	IDPrograma              int64  `db:"id_programa" json:"id_programa"`
	NumeroMeta              int    `db:"numero_meta" json:"numero_meta"`
	NombreMeta              string `db:"nombre_meta" json:"nombre_meta"`
	CodigoProducto          int    `db:"codigo_producto" json:"codigo_producto"`
	NombreProducto          string `db:"nombre_producto" json:"nombre_producto"`
	CodigoIndicadorProducto int    `db:"codigo_indicador_producto" json:"codigo_indicador_producto"`
	NombreIndicadorProducto string `db:"nombre_indicador_producto" json:"nombre_indicador_producto"`
}

type Dependencia struct {
	ID     int64  `db:"id" json:"id"`
	Nombre string `db:"nombre_dependencia" json:"nombre"`
}

type Politica struct {
	ID     int64  `db:"id" json:"id"`
	Nombre string `db:"nombre_politica" json:"nombre"`
}

type Categoria struct {
	ID         int64  `db:"id" json:"id"`
	IDPolitica int64  `db:"id_politica" json:"id_politica"`
	Nombre     string `db:"nombre_categoria" json:"nombre"`
}

type Subcategoria struct {
	ID          int64  `db:"id" json:"id"`
	IDCategoria int64  `db:"id_categoria" json:"id_categoria"`
	Nombre      string `db:"nombre_subcategoria" json:"nombre"`
}

type VariableSectorial struct {
	ID       int64  `db:"id" json:"id"`
	Nombre   string `db:"nombre_variable" json:"nombre"`
	NoAplica bool   `db:"no_aplica" json:"no_aplica"`
}

type VariableTecnico struct {
	ID       int64  `db:"id" json:"id"`
	Nombre   string `db:"nombre_variable" json:"nombre"`
	NoAplica bool   `db:"no_aplica" json:"no_aplica"`
}

type Viabilidad struct {
	ID       int64  `db:"id" json:"id"`
	Nombre   string `db:"nombre" json:"nombre"`
	NoAplica bool   `db:"no_aplica" json:"no_aplica"`
}

// Opcion es la forma normalizada que consume el front para cualquier
// desplegable: id, nombre y un código ordenable opcional.
type Opcion struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Codigo *int   `json:"codigo,omitempty"`
}

func codigoPtr(c int) *int { return &c }

// Las funciones Opcion* son la única frontera de normalización por forma de
// registro; el resto del sistema nunca ve las formas crudas.

func OpcionDesdeSector(s *Sector) Opcion {
	return Opcion{ID: s.ID, Nombre: s.NombreSector, Codigo: codigoPtr(s.CodigoSector)}
}

func OpcionDesdePrograma(p *Programa) Opcion {
	return Opcion{ID: p.ID, Nombre: p.NombrePrograma, Codigo: codigoPtr(p.CodigoPrograma)}
}

func OpcionDesdeMeta(m *Meta) Opcion {
	return Opcion{ID: m.ID, Nombre: m.NombreMeta, Codigo: codigoPtr(m.NumeroMeta)}
}

func OpcionDesdeLinea(l *LineaEstrategica) Opcion {
	return Opcion{ID: l.ID, Nombre: l.Nombre}
}

func OpcionDesdeDependencia(d *Dependencia) Opcion {
	return Opcion{ID: d.ID, Nombre: d.Nombre}
}

func OpcionDesdePolitica(p *Politica) Opcion {
	return Opcion{ID: p.ID, Nombre: p.Nombre}
}

func OpcionDesdeCategoria(c *Categoria) Opcion {
	return Opcion{ID: c.ID, Nombre: c.Nombre}
}

func OpcionDesdeSubcategoria(s *Subcategoria) Opcion {
	return Opcion{ID: s.ID, Nombre: s.Nombre}
}
