package metrics

import (
	"github.com/dummyhome/controller/inventory"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	roomCount       prometheus.Gauge
	deviceCount     *prometheus.GaugeVec
	subItemsChecked *prometheus.GaugeVec

	quotaRejections *prometheus.CounterVec
	submits         *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		roomCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "inventory_rooms",
				Help: "Number of rooms in the inventory.",
			}),
		deviceCount: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "inventory_device_count",
				Help: "Configured count of a device category within a room.",
			},
			[]string{"room", "device"}),
		subItemsChecked: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "inventory_sub_items_checked",
				Help: "Number of checked sub items of a device category within a room.",
			},
			[]string{"room", "device"}),
		quotaRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_quota_rejections_total",
				Help: "Mutations rejected because a cross room ceiling was reached.",
			},
			[]string{"device"}),
		submits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "project_submits_total",
				Help: "Project submissions by result.",
			},
			[]string{"result"}),
	}

	reg.MustRegister(m.roomCount)
	reg.MustRegister(m.deviceCount)
	reg.MustRegister(m.subItemsChecked)
	reg.MustRegister(m.quotaRejections)
	reg.MustRegister(m.submits)

	return m
}

// Observe replaces the room and device gauges with the provided state.
func (m *Metrics) Observe(rooms []inventory.Room) {
	m.roomCount.Set(float64(len(rooms)))

	m.deviceCount.Reset()
	m.subItemsChecked.Reset()

	for _, room := range rooms {
		for _, device := range room.Devices {
			m.deviceCount.WithLabelValues(room.Name, device.Name).Set(float64(device.Count))

			checked := 0
			for _, item := range device.SubItems {
				if item.Checked {
					checked++
				}
			}

			m.subItemsChecked.WithLabelValues(room.Name, device.Name).Set(float64(checked))
		}
	}
}

func (m *Metrics) QuotaRejected(device string) {
	m.quotaRejections.WithLabelValues(device).Inc()
}

func (m *Metrics) SubmitSucceeded() {
	m.submits.WithLabelValues("success").Inc()
}

func (m *Metrics) SubmitFailed() {
	m.submits.WithLabelValues("failure").Inc()
}
