package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/gamepool/gamepool/client"
	"github.com/gamepool/gamepool/internal/config"
	"github.com/gamepool/gamepool/internal/infra/gateway"
	"github.com/gamepool/gamepool/internal/present/rest"
	mw "github.com/gamepool/gamepool/internal/present/rest/middleware"
	"github.com/gamepool/gamepool/internal/service"
	"github.com/gamepool/gamepool/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if conf.Server.EnableTrace {
		cleanup, err := setupTraceProvider(conf.Server.TraceEndpoint)
		if err != nil {
			panic("failed to setup trace provider: " + err.Error())
		}
		defer cleanup()
	}

	steamClient := client.New()
	steamGateway := gateway.NewSteamGateway(steamClient)
	resolverUC := usecase.NewResolverUsecase(steamGateway)
	libraryUC := usecase.NewLibraryUsecase(resolverUC, steamGateway)
	handler := rest.NewHandler(resolverUC, libraryUC)
	auth := mw.NewAuthMiddleware(service.NewCredentialService())

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(otelecho.Middleware("gamepool"))
	e.Use(auth.IdentifyAPIKey)

	handler.RegisterRoutes(e)

	slog.Info(
		"starting server",
		slog.String("listen", conf.Server.Listen),
		slog.String("module", "main"),
	)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}

func setupTraceProvider(endpoint string) (func(), error) {
	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("gamepool"),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tracerProvider)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(
				"failed to shutdown trace provider",
				slog.String("error", err.Error()),
				slog.String("module", "main"),
			)
		}
	}
	return cleanup, nil
}
