package main

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"shareit/src/boot"
	"shareit/src/common"
	"shareit/src/config"
	"shareit/src/middlewares"
	"shareit/src/types"
	"strconv"
	"time"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var futuredate validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	datetime, err := time.Parse(config.TIME_PARSE_FORMAT, date)
	if err != nil {
		return false
	}
	if ok {
		now := time.Now()
		if now.After(datetime) {
			return false
		}
	}
	return true
}

var gtfield validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	datetime, err := time.Parse(config.TIME_PARSE_FORMAT, date)
	if err != nil {
		return false
	}
	field := fl.Parent().FieldByName(fl.Param())
	fieldValue := field.Interface().(string)
	fielddatetime, err := time.Parse(config.TIME_PARSE_FORMAT, fieldValue)
	if err != nil {
		return false
	}
	if ok {
		if fielddatetime.After(datetime) {
			return false
		}
	}
	return true
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("futuredate", futuredate)
		v.RegisterValidation("gtdate", gtfield)
	}
}

func abortWithError(ctx *gin.Context, err error) {
	var apiErr *common.Error
	if errors.As(err, &apiErr) {
		log.Printf("%s %s: %d %s", ctx.Request.Method, ctx.Request.URL.Path, apiErr.Status, apiErr.Message)
		ctx.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}
	log.Printf("%s %s: %s", ctx.Request.Method, ctx.Request.URL.Path, err.Error())
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func abortWithViolations(ctx *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		resp := types.ValidationErrorResponse{
			Violations: make([]types.Violation, 0, len(verrs)),
		}
		for _, fe := range verrs {
			resp.Violations = append(resp.Violations, types.Violation{
				FieldName: fe.Field(),
				Message:   "failed validation on '" + fe.Tag() + "'",
			})
		}
		ctx.JSON(http.StatusBadRequest, resp)
		return
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func parsePaging(ctx *gin.Context) (int, int, error) {
	from, err := strconv.Atoi(ctx.DefaultQuery("from", "0"))
	if err != nil || from < 0 {
		return 0, 0, common.BadRequest("Invalid from parameter.")
	}
	size, err := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		return 0, 0, common.BadRequest("Invalid size parameter.")
	}
	return from, size, nil
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	registerValidators()

	if os.Getenv("API_ENV") == "local" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "DELETE", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", middlewares.IdentityHeader, middlewares.RequestIDHeader)
		cc.AllowAllOrigins = true
		router.Use(cors.New(cc))
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := router.Group("/")
	public.Use(middlewares.RequestID)
	userHandlers(public)

	authorized := router.Group("/")
	authorized.Use(middlewares.RequestID, middlewares.Identity)
	itemHandlers(authorized)
	requestHandlers(authorized)
	bookingHandlers(authorized)

	return router
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	if os.Getenv("API_ENV") == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	boot.InitDb()

	router := setupRouter()
	if err := router.Run(":9090"); err != nil {
		log.Fatalf("Error starting server: %s\n", err.Error())
	}
}
