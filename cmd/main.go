package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"github.com/VertiaArquitectura/api-cotizador/internal/auth"
	"github.com/VertiaArquitectura/api-cotizador/internal/catalogo"
	"github.com/VertiaArquitectura/api-cotizador/internal/contenido"
	"github.com/VertiaArquitectura/api-cotizador/internal/cotizador"
	"github.com/VertiaArquitectura/api-cotizador/internal/leads"
	"github.com/VertiaArquitectura/api-cotizador/internal/mezclas"
	"github.com/VertiaArquitectura/api-cotizador/internal/notificaciones"
	"github.com/VertiaArquitectura/api-cotizador/internal/productos"
	"github.com/VertiaArquitectura/api-cotizador/internal/proyectos"
	"github.com/VertiaArquitectura/api-cotizador/internal/tarifario"
	"github.com/VertiaArquitectura/api-cotizador/internal/usuarios"
	"github.com/VertiaArquitectura/api-cotizador/internal/utils"
	"github.com/VertiaArquitectura/api-cotizador/internal/utils/db"
)

func main() {
	// .env es opcional; en producción las variables ya vienen del entorno
	_ = godotenv.Load()

	if err := auth.Init(os.Getenv("JWT_SECRET")); err != nil {
		log.Fatal("Error al inicializar auth: ", err)
	}

	database, err := db.DesdeEntorno()
	if err != nil {
		log.Fatal("Error al conectar a la base: ", err)
	}

	if err := migrarTodo(database); err != nil {
		log.Fatal("Error en migraciones: ", err)
	}

	if err := sembrarAdmin(database); err != nil {
		log.Fatal("Error al sembrar admin: ", err)
	}

	// Handlers
	usuariosHandler := usuarios.NewHandler(database)
	contenidoHandler := contenido.NewHandler(contenido.NewRepository(database))
	catalogoHandler := catalogo.NewHandler(catalogo.NewRepository(database))
	tarifarioHandler := tarifario.NewHandler(tarifario.NewRepository(database))
	mezclasHandler := mezclas.NewHandler(mezclas.NewRepository(database))
	cotizadorHandler := cotizador.NewHandler(cotizador.NewCargador(database))
	webhook := notificaciones.NewWebhook(os.Getenv("WEBHOOK_LEADS_URL"))
	leadsHandler := leads.NewHandler(database, webhook)
	productosHandler := productos.NewHandler(productos.NewRepository(database))
	proyectosHandler := proyectos.NewHandler(proyectos.NewRepository(database))

	// Router
	r := mux.NewRouter()

	// Autenticación
	r.HandleFunc("/login", usuariosHandler.Login).Methods("POST")
	r.HandleFunc("/token/refresh", auth.RefreshHandler(database)).Methods("POST")
	r.HandleFunc("/logout", auth.LogoutHandler(database)).Methods("POST")

	// Sitio público
	r.HandleFunc("/contenido/{clave}", contenidoHandler.Buscar).Methods("GET")
	r.HandleFunc("/catalogo/arbol", catalogoHandler.Arbol).Methods("GET")
	r.HandleFunc("/catalogo", catalogoHandler.Listar).Methods("GET")
	r.HandleFunc("/catalogo/{id:[0-9]+}", catalogoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/honorarios", tarifarioHandler.ListarHonorarios).Methods("GET")
	r.HandleFunc("/honorarios/{id}", tarifarioHandler.BuscarHonorario).Methods("GET")
	r.HandleFunc("/planes", tarifarioHandler.ListarPlanes).Methods("GET")
	r.HandleFunc("/mezclas", mezclasHandler.Listar).Methods("GET")
	r.HandleFunc("/mezclas/{id}", mezclasHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/cotizaciones", cotizadorHandler.Calcular).Methods("POST")
	r.HandleFunc("/leads", leadsHandler.Crear).Methods("POST")
	r.HandleFunc("/productos", productosHandler.Listar).Methods("GET")
	r.HandleFunc("/productos/{id}", productosHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/proyectos", proyectosHandler.Listar).Methods("GET")
	r.HandleFunc("/proyectos/{id}", proyectosHandler.BuscarPorID).Methods("GET")

	// Rutas autenticadas (cualquier usuario del panel)
	perfil := r.PathPrefix("/perfil").Subrouter()
	perfil.Use(auth.MiddlewareAutenticacion)
	perfil.HandleFunc("/clave", usuariosHandler.CambiarClave).Methods("PUT")

	// Panel de administración
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.MiddlewareAutenticacion, auth.RequireAdmin)

	admin.HandleFunc("/contenido/{clave}", contenidoHandler.Guardar).Methods("PUT")

	admin.HandleFunc("/catalogo", catalogoHandler.Crear).Methods("POST")
	admin.HandleFunc("/catalogo/{id}", catalogoHandler.Actualizar).Methods("PUT")
	admin.HandleFunc("/catalogo/{id}", catalogoHandler.Eliminar).Methods("DELETE")

	admin.HandleFunc("/honorarios", tarifarioHandler.CrearHonorario).Methods("POST")
	admin.HandleFunc("/honorarios/{id}", tarifarioHandler.ActualizarHonorario).Methods("PUT")
	admin.HandleFunc("/honorarios/{id}", tarifarioHandler.EliminarHonorario).Methods("DELETE")
	admin.HandleFunc("/planes", tarifarioHandler.CrearPlan).Methods("POST")
	admin.HandleFunc("/planes/{id}", tarifarioHandler.ActualizarPlan).Methods("PUT")
	admin.HandleFunc("/planes/{id}", tarifarioHandler.EliminarPlan).Methods("DELETE")

	admin.HandleFunc("/mezclas", mezclasHandler.Crear).Methods("POST")
	admin.HandleFunc("/mezclas/{id}", mezclasHandler.Actualizar).Methods("PUT")
	admin.HandleFunc("/mezclas/{id}", mezclasHandler.Eliminar).Methods("DELETE")

	admin.HandleFunc("/leads", leadsHandler.Listar).Methods("GET")
	admin.HandleFunc("/leads/{id}", leadsHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/leads/{id}/estado", leadsHandler.ActualizarEstado).Methods("PATCH")
	admin.HandleFunc("/leads/{id}", leadsHandler.Eliminar).Methods("DELETE")

	admin.HandleFunc("/productos", productosHandler.Listar).Methods("GET")
	admin.HandleFunc("/productos", productosHandler.Crear).Methods("POST")
	admin.HandleFunc("/productos/{id}", productosHandler.Actualizar).Methods("PUT")
	admin.HandleFunc("/productos/{id}", productosHandler.Eliminar).Methods("DELETE")

	admin.HandleFunc("/proyectos", proyectosHandler.Crear).Methods("POST")
	admin.HandleFunc("/proyectos/{id}", proyectosHandler.Actualizar).Methods("PUT")
	admin.HandleFunc("/proyectos/{id}", proyectosHandler.Eliminar).Methods("DELETE")

	admin.HandleFunc("/usuarios", usuariosHandler.Crear).Methods("POST")
	admin.HandleFunc("/usuarios", usuariosHandler.Listar).Methods("GET")
	admin.HandleFunc("/usuarios/{id}", usuariosHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/usuarios/{id}", usuariosHandler.Actualizar).Methods("PUT")
	admin.HandleFunc("/usuarios/{id}/clave", usuariosHandler.ResetearClave).Methods("POST")
	admin.HandleFunc("/usuarios/{id}", usuariosHandler.Eliminar).Methods("DELETE")

	// CORS: el sitio corre en otro origen
	handler := cors.New(cors.Options{
		AllowedOrigins:   origenesPermitidos(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Servidor escuchando en :" + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

func migrarTodo(database *gorm.DB) error {
	migraciones := []func(*gorm.DB) error{
		auth.Migrate,
		usuarios.Migrate,
		contenido.Migrate,
		catalogo.Migrate,
		tarifario.Migrate,
		mezclas.Migrate,
		leads.Migrate,
		productos.Migrate,
		proyectos.Migrate,
	}
	for _, migrar := range migraciones {
		if err := migrar(database); err != nil {
			return err
		}
	}
	return nil
}

func origenesPermitidos() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	return strings.Split(raw, ",")
}

// sembrarAdmin crea la cuenta inicial del panel cuando la tabla de
// usuarios está vacía y el entorno trae las credenciales.
func sembrarAdmin(database *gorm.DB) error {
	repo := usuarios.NewRepository()
	n, err := repo.Contar(database)
	if err != nil || n > 0 {
		return err
	}

	email := os.Getenv("ADMIN_EMAIL")
	clave := os.Getenv("ADMIN_PASSWORD")
	if email == "" || clave == "" {
		return nil
	}

	hash, err := utils.HashClave(clave)
	if err != nil {
		return err
	}
	return repo.Guardar(database, &usuarios.Usuario{
		Nombre:  "Admin",
		Email:   email,
		Hash:    hash,
		EsAdmin: true,
	})
}
