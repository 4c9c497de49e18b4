package httpadapter

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const (
	corsAllowMethods = "GET,POST,OPTIONS"
	corsAllowHeaders = "Content-Type,Authorization"
	corsMaxAge       = "600"
)

// corsOrigin answers with the configured origin, or * when none is set.
func corsOrigin(allowed []string, requestOrigin string) string {
	if len(allowed) == 0 {
		return "*"
	}
	for _, o := range allowed {
		if o == "*" || strings.EqualFold(o, requestOrigin) {
			return o
		}
	}
	return ""
}

func applyCORSHeaders(ctx *app.RequestContext, allowed []string) {
	origin := corsOrigin(allowed, string(ctx.Request.Header.Peek("Origin")))
	if origin == "" {
		return
	}
	ctx.Response.Header.Set("Access-Control-Allow-Origin", origin)
	ctx.Response.Header.Set("Access-Control-Allow-Methods", corsAllowMethods)
	ctx.Response.Header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	ctx.Response.Header.Set("Access-Control-Max-Age", corsMaxAge)
	if origin != "*" {
		ctx.Response.Header.Set("Vary", "Origin")
	}
}

func corsMiddleware(allowed []string) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		applyCORSHeaders(ctx, allowed)
		if string(ctx.Method()) == consts.MethodOptions {
			ctx.AbortWithStatus(consts.StatusNoContent)
			return
		}
		ctx.Next(c)
	}
}
