/*
Package http implements the REST handlers for the service API.

# Endpoints

	GET  /                    service banner
	GET  /health              registry stats and metric snapshot
	GET  /services            list services, optionally ?category=
	POST /services/discover   rank services by intent
	POST /services/execute    run a tool: {"tool_id": "...", "params": {...}}

Tool failures such as a rejected product are reported with status 200 and
success=false. Transport-level problems use 4xx/5xx.
*/
package http
