package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/advisor"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/config"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/entitlement"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/gencache"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/llm"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/people"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/quota"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/supplies"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/wardrobe"
)

// holds all dependencies and state for the API server
type Server struct {
	db         *pgxpool.Pool
	config     *config.Config
	personRepo *people.Repository
	itemRepo   *wardrobe.Repository
	supplyRepo *supplies.Repository
	cacheRepo  *gencache.Repository
	services   *Services
	router     *gin.Engine
}

// holds the AI pipeline and the gating services built on top of it
type Services struct {
	LLM     llm.TextGenerator
	Advisor *advisor.Advisor
	Quota   *quota.Tracker
	Access  *entitlement.Evaluator
}
