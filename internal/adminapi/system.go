package adminapi

import (
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/menuboard/menuboard/internal/menu"
	"github.com/menuboard/menuboard/internal/webserver"
	"github.com/menuboard/menuboard/pkg/metrics"
)

func registerSystemRoutes() {
	webserver.ApiGET("/system/status", systemStatus)
	webserver.ApiGET("/system/metrics", systemMetrics)
}

func systemStatus(c echo.Context) error {
	status := map[string]interface{}{
		"hostname":   "",
		"uptime_sec": uint64(0),
		"goroutines": runtime.NumGoroutine(),
		"go_version": runtime.Version(),
		"pid":        os.Getpid(),
	}
	if hostname, err := os.Hostname(); err == nil {
		status["hostname"] = hostname
	}
	if up, err := host.Uptime(); err == nil {
		status["uptime_sec"] = up
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		status["cpu_percent"] = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		status["mem_total"] = vm.Total
		status["mem_used"] = vm.Used
		status["mem_percent"] = vm.UsedPercent
	}
	workdir := getAppCtx(c).Config().System.Workdir
	if du, err := disk.Usage(workdir); err == nil {
		status["disk_total"] = du.Total
		status["disk_used"] = du.Used
		status["disk_percent"] = du.UsedPercent
	}
	return ok(c, status)
}

// systemMetrics reports request latency percentiles and menu view counts
// for the trailing hour.
func systemMetrics(c echo.Context) error {
	window := time.Hour

	routes := map[string]interface{}{}
	for _, route := range []string{"/api/public/menu", "/api/public/venue", "/api/public/promotions"} {
		summary, err := metrics.LatencySummary(route, window)
		if err != nil {
			continue
		}
		routes[route] = summary
	}

	return ok(c, map[string]interface{}{
		"window_sec": int(window.Seconds()),
		"latency":    routes,
		"views": map[string]int{
			"food":   metrics.ViewCount(string(menu.ViewFood), window),
			"drinks": metrics.ViewCount(string(menu.ViewDrinks), window),
		},
	})
}
