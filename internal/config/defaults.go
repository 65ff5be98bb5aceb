package config

import "github.com/nmoret/diagile/internal/model"

// Default returns the built-in configuration. The vocabularies come from
// surveying real architecture diagrams; synonym order inside an entry is
// irrelevant, table order is not.
func Default() *Config {
	return &Config{
		ComponentKinds: []KindSynonyms{
			{Kind: string(model.KindWebApplication), Synonyms: []string{
				"web-application", "web-app", "webapp", "web", "browser",
				"frontend", "ui", "spa", "portal", "dashboard", "website",
			}},
			{Kind: string(model.KindMobileApp), Synonyms: []string{
				"mobile-app", "mobile", "ios-app", "android-app", "smartphone-app",
			}},
			{Kind: string(model.KindService), Synonyms: []string{
				"service", "microservice", "api", "rest", "graphql", "endpoint",
				"backend", "ms", "application", "app", "process", "worker",
				"lambda", "function", "serverless",
			}},
			{Kind: string(model.KindDatabase), Synonyms: []string{
				"database", "db", "sql", "nosql", "postgres", "postgresql",
				"mysql", "mongodb", "oracle", "rdbms", "datastore", "cylinder",
			}},
			{Kind: string(model.KindFileStorage), Synonyms: []string{
				"file-storage", "storage", "s3", "bucket", "blob",
				"filesystem", "file-share", "nfs",
			}},
			{Kind: string(model.KindMessageQueue), Synonyms: []string{
				"message-queue", "queue", "kafka", "rabbitmq", "mq", "broker",
				"event-bus", "pubsub", "sqs",
			}},
			{Kind: string(model.KindLoadBalancer), Synonyms: []string{
				"load-balancer", "lb", "haproxy", "nginx", "elb", "alb",
				"traffic-manager",
			}},
			{Kind: string(model.KindReverseProxy), Synonyms: []string{
				"reverse-proxy", "proxy", "envoy", "traefik",
			}},
			{Kind: string(model.KindWAF), Synonyms: []string{
				"waf", "web-application-firewall",
			}},
			{Kind: string(model.KindIDS), Synonyms: []string{
				"ids", "intrusion-detection",
			}},
			{Kind: string(model.KindIPS), Synonyms: []string{
				"ips", "intrusion-prevention",
			}},
			{Kind: string(model.KindVPN), Synonyms: []string{
				"vpn", "tunnel", "wireguard", "ipsec",
			}},
			{Kind: string(model.KindFirewall), Synonyms: []string{
				"firewall", "fw", "nacl",
			}},
			{Kind: string(model.KindGateway), Synonyms: []string{
				"gateway", "api-gateway", "ingress", "bff", "edge",
			}},
		},
		BoundaryKinds: []KindSynonyms{
			{Kind: string(model.BoundaryNetwork), Synonyms: []string{
				"network", "dmz", "vpc", "subnet", "vlan", "zone", "perimeter",
			}},
			{Kind: string(model.BoundaryPhysical), Synonyms: []string{
				"physical", "datacenter", "site", "building", "on-prem",
			}},
			{Kind: string(model.BoundaryLogical), Synonyms: []string{
				"logical", "namespace", "cluster", "tenant", "environment",
			}},
			{Kind: string(model.BoundaryOrganizational), Synonyms: []string{
				"organizational", "org", "team", "department", "third-party",
			}},
			{Kind: string(model.BoundaryLegal), Synonyms: []string{
				"legal", "jurisdiction", "contractual",
			}},
			{Kind: string(model.BoundaryRegulatory), Synonyms: []string{
				"regulatory", "pci", "gdpr", "hipaa", "compliance-scope",
			}},
		},
		RelationKinds: []KindSynonyms{
			{Kind: string(model.RelationDataFlow), Synonyms: []string{
				"data-flow", "flow", "data", "sends", "reads", "writes",
			}},
			{Kind: string(model.RelationTrustBoundary), Synonyms: []string{
				"trust-boundary", "crosses-boundary",
			}},
			{Kind: string(model.RelationCommunication), Synonyms: []string{
				"communication", "calls", "invokes", "requests",
			}},
			{Kind: string(model.RelationDependency), Synonyms: []string{
				"dependency", "depends", "uses", "requires",
			}},
			{Kind: string(model.RelationInheritance), Synonyms: []string{
				"inheritance", "extends", "inherits",
			}},
			{Kind: string(model.RelationComposition), Synonyms: []string{
				"composition", "composes", "contains",
			}},
			{Kind: string(model.RelationAggregation), Synonyms: []string{
				"aggregation", "aggregates",
			}},
			{Kind: string(model.RelationAssociation), Synonyms: []string{
				"association", "relates",
			}},
		},
		DataKinds: []DataKind{
			{Kind: "business", Description: "Business data",
				Confidentiality: string(model.ConfidentialityRestricted),
				Cues: []string{"transaction", "order", "invoice", "payment", "business", "financial"}},
			{Kind: "user", Description: "User data",
				Confidentiality: string(model.ConfidentialityConfidential),
				Cues: []string{"credential", "profile", "personal", "user", "account", "pii"}},
			{Kind: "system", Description: "System data",
				Confidentiality: string(model.ConfidentialityInternal),
				Cues: []string{"log", "metric", "config", "system", "monitoring", "performance"}},
			{Kind: "public", Description: "Public data",
				Confidentiality: string(model.ConfidentialityPublic),
				Cues: []string{"content", "static", "media", "public", "website", "blog"}},
		},
		Confidentiality: []LevelSynonyms{
			{Level: string(model.ConfidentialityStrictlyConfidential), Synonyms: []string{
				"strictly-confidential", "top-secret", "secret",
			}},
			{Level: string(model.ConfidentialityConfidential), Synonyms: []string{
				"confidential", "sensitive", "pii", "gdpr",
			}},
			{Level: string(model.ConfidentialityRestricted), Synonyms: []string{
				"restricted", "need-to-know",
			}},
			{Level: string(model.ConfidentialityInternal), Synonyms: []string{
				"internal", "private",
			}},
			{Level: string(model.ConfidentialityPublic), Synonyms: []string{
				"public", "open",
			}},
		},
		Integrity: []LevelSynonyms{
			{Level: string(model.CriticalityMissionCritical), Synonyms: []string{
				"mission-critical", "vital",
			}},
			{Level: string(model.CriticalityCritical), Synonyms: []string{
				"critical", "integrity-critical",
			}},
			{Level: string(model.CriticalityImportant), Synonyms: []string{
				"important",
			}},
			{Level: string(model.CriticalityOperational), Synonyms: []string{
				"operational",
			}},
		},
		Availability: []LevelSynonyms{
			{Level: string(model.CriticalityMissionCritical), Synonyms: []string{
				"mission-critical", "always-on",
			}},
			{Level: string(model.CriticalityCritical), Synonyms: []string{
				"critical", "ha", "high-availability",
			}},
			{Level: string(model.CriticalityImportant), Synonyms: []string{
				"important",
			}},
			{Level: string(model.CriticalityOperational), Synonyms: []string{
				"operational", "best-effort",
			}},
		},
		Defaults: RatingDefaults{
			Confidentiality: string(model.ConfidentialityInternal),
			Integrity:       string(model.CriticalityOperational),
			Availability:    string(model.CriticalityOperational),
		},
		Protocols: []Protocol{
			{Name: "https", Encryption: true, Authentication: "required", Authorization: "required"},
			{Name: "http", Encryption: false, Authentication: "none", Authorization: "none"},
			{Name: "wss", Encryption: true, Authentication: "required", Authorization: "required"},
			{Name: "ws", Encryption: false, Authentication: "none", Authorization: "none"},
			{Name: "grpc", Encryption: true, Authentication: "required", Authorization: "required"},
			{Name: "amqp", Encryption: true, Authentication: "required", Authorization: "required"},
			{Name: "kafka", Encryption: true, Authentication: "required", Authorization: "required"},
			{Name: "mqtt", Encryption: true, Authentication: "required", Authorization: "required"},
			{Name: "tcp", Encryption: false, Authentication: "none", Authorization: "none"},
			{Name: "udp", Encryption: false, Authentication: "none", Authorization: "none"},
		},
		Validation: ValidationRules{
			IDPattern:   `^[a-z0-9][a-z0-9_-]*$`,
			NamePattern: `^[\pL\pN][\pL\pN\s._/-]*$`,
			MinNameLen:  3,
			MaxNameLen:  100,
			MinDescLen:  10,
			MaxDescLen:  500,
			MaxTags:     10,
			DateFormat:  "2006-01-02",
		},
		Compliance: ComplianceRules{
			RequireTrustBoundaries:  true,
			RequireTechnicalAssets:  true,
			RequireDataAssets:       true,
			RequireCIAJustification: true,
		},
		Limits: Limits{
			MaxComponents:      50,
			MaxTechnicalAssets: 50,
			MaxDataAssets:      50,
			MaxTrustBoundaries: 20,
			MaxRelations:       100,
		},
	}
}
