package main

// @title Source-to-Pay API
// @version 1.0.0
// @description Supplier and purchase order management with logging, tracing and metrics

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8000
// @BasePath /

// @tag.name Supplier
// @tag.description Supplier management endpoints

// @tag.name PurchaseOrder
// @tag.description Purchase order management endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
