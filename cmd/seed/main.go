// seed crea datos de demostración: empresa, usuario admin, catálogos básicos
// y un esquema activo de Cliente/medico con campo de domicilio.
//
// Uso: go run ./cmd/seed
// Requiere DATABASE_URL o las variables DB_* (ver pkg/config).
// Es idempotente: salta lo que ya existe.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/martinuzal/pharmind-api/internal/domain/entity"
	"github.com/martinuzal/pharmind-api/internal/infrastructure/postgres"
	"github.com/martinuzal/pharmind-api/pkg/config"
)

const (
	demoEmpresaID = "00000000-0000-0000-0000-000000000001"
	demoAdmin     = "admin@demo.pharmind.local"
	demoPassword  = "demo-admin-123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	empresaRepo := postgres.NewEmpresaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	catalogoRepo := postgres.NewCatalogoRepository(pool)
	esquemaRepo := postgres.NewEsquemaRepository(pool)

	// 1. Empresa demo
	empresa, err := empresaRepo.GetByID(demoEmpresaID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Consultar empresa: %v\n", err)
		os.Exit(1)
	}
	if empresa == nil {
		empresa = &entity.Empresa{
			ID:     demoEmpresaID,
			Nombre: "Laboratorios Demo",
			NIT:    "900123456-7",
			Pais:   "AR",
		}
		if err := empresaRepo.Create(empresa); err != nil {
			fmt.Fprintf(os.Stderr, "Crear empresa: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Empresa demo creada:", demoEmpresaID)
	} else {
		fmt.Println("Empresa demo ya existe, se omite")
	}

	// 2. Usuario admin
	usuario, err := usuarioRepo.GetByEmailAndEmpresa(demoAdmin, demoEmpresaID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Consultar usuario: %v\n", err)
		os.Exit(1)
	}
	if usuario == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Hashear contraseña: %v\n", err)
			os.Exit(1)
		}
		usuario = &entity.Usuario{
			ID:           uuid.New().String(),
			EmpresaID:    demoEmpresaID,
			Email:        demoAdmin,
			PasswordHash: string(hash),
			Nombre:       "Admin Demo",
			Role:         entity.RoleAdmin,
			Estado:       "active",
		}
		if err := usuarioRepo.Create(usuario); err != nil {
			fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Usuario admin creado: %s / %s\n", demoAdmin, demoPassword)
	} else {
		fmt.Println("Usuario admin ya existe, se omite")
	}

	// 3. Catálogos básicos
	regiones, err := catalogoRepo.ListRegiones(demoEmpresaID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Consultar regiones: %v\n", err)
		os.Exit(1)
	}
	if len(regiones) == 0 {
		region := &entity.Region{
			ID:        uuid.New().String(),
			EmpresaID: demoEmpresaID,
			Nombre:    "Litoral",
			Codigo:    "LIT",
		}
		if err := catalogoRepo.CreateRegion(region); err != nil {
			fmt.Fprintf(os.Stderr, "Crear región: %v\n", err)
			os.Exit(1)
		}
		distrito := &entity.Distrito{
			ID:       uuid.New().String(),
			RegionID: region.ID,
			Nombre:   "Rosario Centro",
			Codigo:   "ROS-01",
		}
		if err := catalogoRepo.CreateDistrito(distrito); err != nil {
			fmt.Fprintf(os.Stderr, "Crear distrito: %v\n", err)
			os.Exit(1)
		}
		manager := &entity.Manager{
			ID:        uuid.New().String(),
			EmpresaID: demoEmpresaID,
			Nombre:    "Gerencia Litoral",
			Email:     "gerencia.litoral@demo.pharmind.local",
		}
		if err := catalogoRepo.CreateManager(manager); err != nil {
			fmt.Fprintf(os.Stderr, "Crear manager: %v\n", err)
			os.Exit(1)
		}
		producto := &entity.Producto{
			ID:          uuid.New().String(),
			EmpresaID:   demoEmpresaID,
			Nombre:      "Cardiomax 50mg",
			CodigoATC:   "C07AB02",
			Descripcion: "Betabloqueante, presentación x30 comprimidos",
		}
		if err := catalogoRepo.CreateProducto(producto); err != nil {
			fmt.Fprintf(os.Stderr, "Crear producto: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Catálogos básicos creados (región, distrito, manager, producto)")
	} else {
		fmt.Println("Catálogos ya poblados, se omiten")
	}

	// 4. Esquema activo Cliente/medico con campo de domicilio
	empresaID := demoEmpresaID
	existente, err := esquemaRepo.GetActivoPorTriple(&empresaID, entity.EntidadCliente, "medico")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Consultar esquema: %v\n", err)
		os.Exit(1)
	}
	if existente == nil {
		esquema := &entity.EsquemaPersonalizado{
			ID:          uuid.New().String(),
			EmpresaID:   &empresaID,
			EntidadTipo: entity.EntidadCliente,
			SubTipo:     "medico",
			Nombre:      "Ficha de médico",
			Descripcion: "Campos adicionales para clientes médicos",
			Icono:       "stethoscope",
			Color:       "#2f7d6d",
			Orden:       1,
			Activo:      true,
			Version:     1,
			Campos: []entity.CampoEsquema{
				{Nombre: "especialidad", Tipo: entity.CampoSelect, Etiqueta: "Especialidad",
					Opciones: []string{"cardiología", "clínica", "pediatría"}, Requerido: true},
				{Nombre: "matricula", Tipo: entity.CampoTexto, Etiqueta: "Matrícula"},
				{Nombre: "telefonoConsultorio", Tipo: entity.CampoTelefono, Etiqueta: "Teléfono consultorio"},
				{Nombre: "domicilio", Tipo: entity.CampoDireccion, Etiqueta: "Domicilio del consultorio"},
			},
			CreadoPor: demoAdmin,
		}
		if err := esquemaRepo.Create(esquema); err != nil {
			fmt.Fprintf(os.Stderr, "Crear esquema: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Esquema Cliente/medico creado:", esquema.ID)
	} else {
		fmt.Println("Esquema Cliente/medico ya activo, se omite")
	}

	fmt.Println("Seed completado")
}
