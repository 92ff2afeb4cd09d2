package crm_test

import (
	"context"
	"errors"
	"time"

	"github.com/martinuzal/pharmind-api/internal/application/crm"
	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/internal/domain/repository"
)

// almacen es un store en memoria compartido por todos los fakes, con snapshot y
// restore para que el fakeTxRunner pueda simular rollback real.
type almacen struct {
	esquemas      map[string]*entity.EsquemaPersonalizado
	direcciones   map[string]*entity.Direccion
	dinamicas     map[string]*entity.EntidadDinamica
	clientes      map[string]*entity.Cliente
	agentes       map[string]*entity.Agente
	relaciones    map[string]*entity.Relacion
	interacciones map[string]*entity.Interaccion
	regiones      map[string]*entity.Region
	distritos     map[string]*entity.Distrito
	managers      map[string]*entity.Manager
	productos     map[string]*entity.Producto

	// fallaCliente fuerza el fallo del siguiente Create/Update de cliente para
	// probar la atomicidad de la transacción.
	fallaCliente bool

	// errLectura simula un fallo de almacenamiento en las consultas de
	// esquemas y catálogos (debe propagarse, no convertirse en validación).
	errLectura error
}

func nuevoAlmacen() *almacen {
	return &almacen{
		esquemas:      map[string]*entity.EsquemaPersonalizado{},
		direcciones:   map[string]*entity.Direccion{},
		dinamicas:     map[string]*entity.EntidadDinamica{},
		clientes:      map[string]*entity.Cliente{},
		agentes:       map[string]*entity.Agente{},
		relaciones:    map[string]*entity.Relacion{},
		interacciones: map[string]*entity.Interaccion{},
		regiones:      map[string]*entity.Region{},
		distritos:     map[string]*entity.Distrito{},
		managers:      map[string]*entity.Manager{},
		productos:     map[string]*entity.Producto{},
	}
}

func clonar[T any](src map[string]*T) map[string]*T {
	dst := make(map[string]*T, len(src))
	for k, v := range src {
		copia := *v
		dst[k] = &copia
	}
	return dst
}

func (a *almacen) snapshot() *almacen {
	return &almacen{
		esquemas:      clonar(a.esquemas),
		direcciones:   clonar(a.direcciones),
		dinamicas:     clonar(a.dinamicas),
		clientes:      clonar(a.clientes),
		agentes:       clonar(a.agentes),
		relaciones:    clonar(a.relaciones),
		interacciones: clonar(a.interacciones),
		regiones:      clonar(a.regiones),
		distritos:     clonar(a.distritos),
		managers:      clonar(a.managers),
		productos:     clonar(a.productos),
	}
}

func (a *almacen) restaurar(s *almacen) {
	a.esquemas = s.esquemas
	a.direcciones = s.direcciones
	a.dinamicas = s.dinamicas
	a.clientes = s.clientes
	a.agentes = s.agentes
	a.relaciones = s.relaciones
	a.interacciones = s.interacciones
	a.regiones = s.regiones
	a.distritos = s.distritos
	a.managers = s.managers
	a.productos = s.productos
}

// fakeTxRunner ejecuta fn contra el almacén y lo restaura si fn falla.
type fakeTxRunner struct{ a *almacen }

func (r *fakeTxRunner) RunCRM(_ context.Context, fn func(
	dirRepo repository.DireccionRepository,
	dinRepo repository.EntidadDinamicaRepository,
	clienteRepo repository.ClienteRepository,
	agenteRepo repository.AgenteRepository,
	relacionRepo repository.RelacionRepository,
	interaccionRepo repository.InteraccionRepository,
) error) error {
	snap := r.a.snapshot()
	err := fn(
		&direccionRepo{a: r.a},
		&dinamicaRepo{a: r.a},
		&clienteRepo{a: r.a},
		&agenteRepo{a: r.a},
		&relacionRepo{a: r.a},
		&interaccionRepo{a: r.a},
	)
	if err != nil {
		r.a.restaurar(snap)
	}
	return err
}

var _ crm.TxRunner = (*fakeTxRunner)(nil)

// ── repos fake ────────────────────────────────────────────────────────────────

type esquemaRepo struct{ a *almacen }

func (r *esquemaRepo) Create(e *entity.EsquemaPersonalizado) error {
	copia := *e
	r.a.esquemas[e.ID] = &copia
	return nil
}

func (r *esquemaRepo) GetByID(id string) (*entity.EsquemaPersonalizado, error) {
	if r.a.errLectura != nil {
		return nil, r.a.errLectura
	}
	e, ok := r.a.esquemas[id]
	if !ok {
		return nil, nil
	}
	copia := *e
	return &copia, nil
}

func (r *esquemaRepo) GetActivoPorTriple(empresaID *string, tipo entity.EntidadTipo, subTipo string) (*entity.EsquemaPersonalizado, error) {
	for _, e := range r.a.esquemas {
		if e.Activo && e.EntidadTipo == tipo && e.SubTipo == subTipo {
			copia := *e
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *esquemaRepo) ListActivos(empresaID *string, tipo entity.EntidadTipo) ([]*entity.EsquemaPersonalizado, error) {
	var out []*entity.EsquemaPersonalizado
	for _, e := range r.a.esquemas {
		if e.Activo && e.EntidadTipo == tipo {
			copia := *e
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *esquemaRepo) Update(e *entity.EsquemaPersonalizado) error {
	copia := *e
	r.a.esquemas[e.ID] = &copia
	return nil
}

func (r *esquemaRepo) Desactivar(id string, actor string) error {
	if e, ok := r.a.esquemas[id]; ok {
		e.Activo = false
	}
	return nil
}

type direccionRepo struct{ a *almacen }

func (r *direccionRepo) Create(d *entity.Direccion) error {
	copia := *d
	r.a.direcciones[d.ID] = &copia
	return nil
}

func (r *direccionRepo) GetByID(id string) (*entity.Direccion, error) {
	d, ok := r.a.direcciones[id]
	if !ok {
		return nil, nil
	}
	copia := *d
	return &copia, nil
}

type dinamicaRepo struct{ a *almacen }

func (r *dinamicaRepo) Create(d *entity.EntidadDinamica) error {
	copia := *d
	r.a.dinamicas[d.ID] = &copia
	return nil
}

func (r *dinamicaRepo) GetByID(id string) (*entity.EntidadDinamica, error) {
	d, ok := r.a.dinamicas[id]
	if !ok || !d.Activo {
		return nil, nil
	}
	copia := *d
	return &copia, nil
}

func (r *dinamicaRepo) Update(d *entity.EntidadDinamica) error {
	copia := *d
	r.a.dinamicas[d.ID] = &copia
	return nil
}

func (r *dinamicaRepo) Desactivar(id string, actor string) error {
	if d, ok := r.a.dinamicas[id]; ok {
		d.Activo = false
		d.ModificadoPor = actor
	}
	return nil
}

type clienteRepo struct{ a *almacen }

func (r *clienteRepo) Create(c *entity.Cliente) error {
	if r.a.fallaCliente {
		r.a.fallaCliente = false
		return errors.New("insert cliente: conexión perdida")
	}
	copia := *c
	r.a.clientes[c.ID] = &copia
	return nil
}

func (r *clienteRepo) GetByID(id string) (*entity.Cliente, error) {
	c, ok := r.a.clientes[id]
	if !ok || !c.Activo {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (r *clienteRepo) ListByEmpresa(empresaID string, busqueda string, limit, offset int) ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range r.a.clientes {
		if c.Activo && c.EmpresaID == empresaID {
			copia := *c
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *clienteRepo) Update(c *entity.Cliente) error {
	if r.a.fallaCliente {
		r.a.fallaCliente = false
		return errors.New("update cliente: conexión perdida")
	}
	copia := *c
	r.a.clientes[c.ID] = &copia
	return nil
}

func (r *clienteRepo) Desactivar(id string, actor string) error {
	if c, ok := r.a.clientes[id]; ok {
		c.Activo = false
		c.ModificadoPor = actor
	}
	return nil
}

type agenteRepo struct{ a *almacen }

func (r *agenteRepo) Create(ag *entity.Agente) error {
	copia := *ag
	r.a.agentes[ag.ID] = &copia
	return nil
}

func (r *agenteRepo) GetByID(id string) (*entity.Agente, error) {
	ag, ok := r.a.agentes[id]
	if !ok || !ag.Activo {
		return nil, nil
	}
	copia := *ag
	return &copia, nil
}

func (r *agenteRepo) ListByEmpresa(empresaID string, busqueda string, limit, offset int) ([]*entity.Agente, error) {
	var out []*entity.Agente
	for _, ag := range r.a.agentes {
		if ag.Activo && ag.EmpresaID == empresaID {
			copia := *ag
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *agenteRepo) Update(ag *entity.Agente) error {
	copia := *ag
	r.a.agentes[ag.ID] = &copia
	return nil
}

func (r *agenteRepo) Desactivar(id string, actor string) error {
	if ag, ok := r.a.agentes[id]; ok {
		ag.Activo = false
	}
	return nil
}

type relacionRepo struct{ a *almacen }

func (r *relacionRepo) Create(rel *entity.Relacion) error {
	copia := *rel
	r.a.relaciones[rel.ID] = &copia
	return nil
}

func (r *relacionRepo) GetByID(id string) (*entity.Relacion, error) {
	rel, ok := r.a.relaciones[id]
	if !ok || !rel.Activo {
		return nil, nil
	}
	copia := *rel
	return &copia, nil
}

func (r *relacionRepo) ListByEmpresa(empresaID string, agenteID string, limit, offset int) ([]*entity.Relacion, error) {
	var out []*entity.Relacion
	for _, rel := range r.a.relaciones {
		if rel.Activo && rel.EmpresaID == empresaID && (agenteID == "" || rel.AgenteID == agenteID) {
			copia := *rel
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *relacionRepo) Update(rel *entity.Relacion) error {
	copia := *rel
	r.a.relaciones[rel.ID] = &copia
	return nil
}

func (r *relacionRepo) Desactivar(id string, actor string) error {
	if rel, ok := r.a.relaciones[id]; ok {
		rel.Activo = false
	}
	return nil
}

type interaccionRepo struct{ a *almacen }

func (r *interaccionRepo) Create(i *entity.Interaccion) error {
	copia := *i
	r.a.interacciones[i.ID] = &copia
	return nil
}

func (r *interaccionRepo) GetByID(id string) (*entity.Interaccion, error) {
	i, ok := r.a.interacciones[id]
	if !ok || !i.Activo {
		return nil, nil
	}
	copia := *i
	return &copia, nil
}

func (r *interaccionRepo) ListByRelacion(relacionID string, limit, offset int) ([]*entity.Interaccion, error) {
	var out []*entity.Interaccion
	for _, i := range r.a.interacciones {
		if i.Activo && i.RelacionID == relacionID {
			copia := *i
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *interaccionRepo) Update(i *entity.Interaccion) error {
	copia := *i
	r.a.interacciones[i.ID] = &copia
	return nil
}

func (r *interaccionRepo) Desactivar(id string, actor string) error {
	if i, ok := r.a.interacciones[id]; ok {
		i.Activo = false
	}
	return nil
}

type catalogoRepo struct{ a *almacen }

func (r *catalogoRepo) CreateRegion(reg *entity.Region) error {
	copia := *reg
	r.a.regiones[reg.ID] = &copia
	return nil
}

func (r *catalogoRepo) GetRegion(id string) (*entity.Region, error) {
	if r.a.errLectura != nil {
		return nil, r.a.errLectura
	}
	reg, ok := r.a.regiones[id]
	if !ok {
		return nil, nil
	}
	copia := *reg
	return &copia, nil
}

func (r *catalogoRepo) ListRegiones(empresaID string) ([]*entity.Region, error) {
	var out []*entity.Region
	for _, reg := range r.a.regiones {
		if reg.EmpresaID == empresaID {
			copia := *reg
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *catalogoRepo) CreateDistrito(d *entity.Distrito) error {
	copia := *d
	r.a.distritos[d.ID] = &copia
	return nil
}

func (r *catalogoRepo) GetDistrito(id string) (*entity.Distrito, error) {
	d, ok := r.a.distritos[id]
	if !ok {
		return nil, nil
	}
	copia := *d
	return &copia, nil
}

func (r *catalogoRepo) ListDistritos(regionID string) ([]*entity.Distrito, error) {
	var out []*entity.Distrito
	for _, d := range r.a.distritos {
		if d.RegionID == regionID {
			copia := *d
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *catalogoRepo) CreateManager(m *entity.Manager) error {
	copia := *m
	r.a.managers[m.ID] = &copia
	return nil
}

func (r *catalogoRepo) GetManager(id string) (*entity.Manager, error) {
	m, ok := r.a.managers[id]
	if !ok {
		return nil, nil
	}
	copia := *m
	return &copia, nil
}

func (r *catalogoRepo) ListManagers(empresaID string) ([]*entity.Manager, error) {
	var out []*entity.Manager
	for _, m := range r.a.managers {
		if m.EmpresaID == empresaID {
			copia := *m
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *catalogoRepo) CreateProducto(p *entity.Producto) error {
	copia := *p
	r.a.productos[p.ID] = &copia
	return nil
}

func (r *catalogoRepo) GetProducto(id string) (*entity.Producto, error) {
	p, ok := r.a.productos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *catalogoRepo) ListProductos(empresaID string) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.a.productos {
		if p.EmpresaID == empresaID {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

// ── datos de apoyo ────────────────────────────────────────────────────────────

func sembrarEsquema(a *almacen, id string, tipo entity.EntidadTipo, subTipo string, campos ...entity.CampoEsquema) *entity.EsquemaPersonalizado {
	e := &entity.EsquemaPersonalizado{
		ID:           id,
		EntidadTipo:  tipo,
		SubTipo:      subTipo,
		Nombre:       "Esquema " + id,
		Activo:       true,
		Version:      1,
		Campos:       campos,
		CreadoEn:     time.Now(),
		ModificadoEn: time.Now(),
	}
	a.esquemas[id] = e
	return e
}
