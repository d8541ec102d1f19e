package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	qremis "github.com/reoring/qremis"
	"github.com/reoring/qremis/schema"
)

type cli struct {
	stdout io.Writer
	stdin  io.Reader
	log    zerolog.Logger
}

func (c *cli) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (c *cli) parse(fs *flag.FlagSet, args []string) bool {
	if err := fs.Parse(args); err != nil {
		c.log.Error().Err(err).Str("command", fs.Name()).Msg("invalid flags")
		return false
	}
	return true
}

// write renders v as indented JSON or YAML.
func (c *cli) write(v any, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(c.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json", "":
		// MarshalIndent pads recursive types like *jsonschema.Schema far
		// beyond their size; indent the compact form instead.
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, b, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err = buf.WriteTo(c.stdout)
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func (c *cli) describe(args []string) int {
	fs := c.flags("describe")
	root := fs.String("root", string(qremis.TypeRoot), "record type to start from")
	format := fs.String("format", "json", "output format (json, yaml)")
	if !c.parse(fs, args) {
		return 2
	}
	d, err := qremis.DescribeSchema(schema.TypeName(*root))
	if err != nil {
		c.log.Error().Err(err).Str("root", *root).Msg("describe failed")
		return 1
	}
	c.log.Debug().Str("root", *root).Int("fields", len(d)).Msg("described schema")
	if err := c.write(d, *format); err != nil {
		c.log.Error().Err(err).Msg("write failed")
		return 1
	}
	return 0
}

func (c *cli) jsonSchema(args []string) int {
	fs := c.flags("jsonschema")
	root := fs.String("root", string(qremis.TypeRoot), "record type to start from")
	if !c.parse(fs, args) {
		return 2
	}
	s, err := qremis.JSONSchema(schema.TypeName(*root))
	if err != nil {
		c.log.Error().Err(err).Str("root", *root).Msg("jsonschema failed")
		return 1
	}
	c.log.Debug().Str("root", *root).Int("defs", len(s.Defs)).Msg("projected schema")
	if err := c.write(s, "json"); err != nil {
		c.log.Error().Err(err).Msg("write failed")
		return 1
	}
	return 0
}

func (c *cli) validate(args []string) int {
	fs := c.flags("validate")
	typ := fs.String("type", string(qremis.TypeQremis), "record type of the document root")
	format := fs.String("format", "json", "input format (json, yaml)")
	if !c.parse(fs, args) {
		return 2
	}
	if fs.NArg() != 1 {
		c.log.Error().Msg("validate expects exactly one FILE argument")
		return 2
	}
	path := fs.Arg(0)
	data, err := c.readInput(path)
	if err != nil {
		c.log.Error().Err(err).Str("file", path).Msg("read failed")
		return 1
	}

	var r *qremis.Record
	switch *format {
	case "yaml":
		r, err = qremis.DecodeYAML(schema.TypeName(*typ), data)
	case "json":
		r, err = qremis.Decode(schema.TypeName(*typ), data)
	default:
		c.log.Error().Str("format", *format).Msg("unsupported format")
		return 2
	}
	if err == nil {
		err = qremis.Validate(r)
	}
	if err == nil {
		c.log.Info().Str("file", path).Str("type", *typ).Msg("valid")
		return 0
	}
	iss, ok := qremis.AsIssues(err)
	if !ok {
		c.log.Error().Err(err).Str("file", path).Msg("invalid")
		return 1
	}
	for _, it := range iss {
		fmt.Fprintf(c.stdout, "%s\t%s\t%s\n", it.Path, it.Code, it.Message)
	}
	c.log.Warn().Str("file", path).Int("issues", len(iss)).Msg("invalid")
	return 1
}

func (c *cli) readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(c.stdin)
	}
	return os.ReadFile(path)
}

func (c *cli) scaffold(args []string) int {
	fs := c.flags("scaffold")
	category := fs.String("category", "file", "objectCategory of the scaffolded object")
	formatName := fs.String("format-name", "application/octet-stream", "formatName of the scaffolded object")
	agent := fs.String("agent", "qremis", "agentName of the scaffolded agent")
	format := fs.String("format", "json", "output format (json, yaml)")
	if !c.parse(fs, args) {
		return 2
	}
	doc, err := scaffold(*category, *formatName, *agent, time.Now().UTC())
	if err != nil {
		c.log.Error().Err(err).Msg("scaffold failed")
		return 1
	}
	c.log.Debug().Strs("fields", doc.Fields()).Msg("scaffolded document")
	switch *format {
	case "yaml":
		b, err := qremis.EncodeYAML(doc)
		if err != nil {
			c.log.Error().Err(err).Msg("encode failed")
			return 1
		}
		_, _ = c.stdout.Write(b)
	default:
		b, err := qremis.Serialize(doc)
		if err != nil {
			c.log.Error().Err(err).Msg("encode failed")
			return 1
		}
		fmt.Fprintln(c.stdout, string(b))
	}
	return 0
}

// scaffold builds a minimal valid Qremis document: one object, the creation
// event for it and the agent that performed it, all identified by UUIDs.
func scaffold(category, formatName, agentName string, now time.Time) (*qremis.Record, error) {
	objectID, eventID, agentID := uuid.New().String(), uuid.New().String(), uuid.New().String()

	designation, err := qremis.New(qremis.TypeFormatDesignation, nil, qremis.Values{"formatName": formatName})
	if err != nil {
		return nil, err
	}
	format, err := qremis.New(qremis.TypeFormat, []*qremis.Record{designation}, nil)
	if err != nil {
		return nil, err
	}
	characteristics, err := qremis.New(qremis.TypeObjectCharacteristics, []*qremis.Record{format}, nil)
	if err != nil {
		return nil, err
	}
	oid, err := qremis.New(qremis.TypeObjectIdentifier, nil, qremis.Values{
		"objectIdentifierType":  "uuid",
		"objectIdentifierValue": objectID,
	})
	if err != nil {
		return nil, err
	}
	object, err := qremis.New(qremis.TypeObject, []*qremis.Record{oid, characteristics}, qremis.Values{"objectCategory": category})
	if err != nil {
		return nil, err
	}

	eid, err := qremis.New(qremis.TypeEventIdentifier, nil, qremis.Values{
		"eventIdentifierType":  "uuid",
		"eventIdentifierValue": eventID,
	})
	if err != nil {
		return nil, err
	}
	event, err := qremis.New(qremis.TypeEvent, []*qremis.Record{eid}, qremis.Values{
		"eventType":     "creation",
		"eventDateTime": now.Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	aid, err := qremis.New(qremis.TypeAgentIdentifier, nil, qremis.Values{
		"agentIdentifierType":  "uuid",
		"agentIdentifierValue": agentID,
	})
	if err != nil {
		return nil, err
	}
	agent, err := qremis.New(qremis.TypeAgent, []*qremis.Record{aid}, qremis.Values{
		"agentName": agentName,
		"agentType": "software",
	})
	if err != nil {
		return nil, err
	}

	relationship, err := linkObjectEventAgent(objectID, eventID, agentID)
	if err != nil {
		return nil, err
	}

	return qremis.New(qremis.TypeQremis, []*qremis.Record{object, event, agent, relationship}, nil)
}

// linkObjectEventAgent records that the event created the object and was
// performed by the agent.
func linkObjectEventAgent(objectID, eventID, agentID string) (*qremis.Record, error) {
	rid, err := qremis.New(qremis.TypeRelationshipIdentifier, nil, qremis.Values{
		"relationshipIdentifierType":  "uuid",
		"relationshipIdentifierValue": uuid.New().String(),
	})
	if err != nil {
		return nil, err
	}
	lo, err := qremis.New(qremis.TypeLinkingObjectIdentifier, nil, qremis.Values{
		"linkingObjectIdentifierType":  "uuid",
		"linkingObjectIdentifierValue": objectID,
	})
	if err != nil {
		return nil, err
	}
	le, err := qremis.New(qremis.TypeLinkingEventIdentifier, nil, qremis.Values{
		"linkingEventIdentifierType":  "uuid",
		"linkingEventIdentifierValue": eventID,
	})
	if err != nil {
		return nil, err
	}
	la, err := qremis.New(qremis.TypeLinkingAgentIdentifier, nil, qremis.Values{
		"linkingAgentIdentifierType":  "uuid",
		"linkingAgentIdentifierValue": agentID,
	})
	if err != nil {
		return nil, err
	}
	return qremis.New(qremis.TypeRelationship, []*qremis.Record{rid, lo, le, la}, qremis.Values{
		"relationshipType":    "creation",
		"relationshipSubType": "created by",
	})
}
