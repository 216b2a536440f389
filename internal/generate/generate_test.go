package generate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureRootProtocol = `<protocol>
  <enum name="PacketFamily" type="char">
    <value name="Connection">1</value>
    <value name="Talk">16</value>
  </enum>
  <enum name="PacketAction" type="char">
    <value name="Request">1</value>
    <value name="Accept">2</value>
  </enum>
  <struct name="Coords">
    <field name="x" type="short" />
    <field name="y" type="short" />
  </struct>
  <struct name="NearbyInfo">
    <length name="items_count" type="char" />
    <array name="items" type="short" length="items_count" />
  </struct>
</protocol>
`

const fixtureClientProtocol = `<protocol>
  <enum name="WeaponType" type="char">
    <value name="Melee">0</value>
    <value name="Ranged">1</value>
  </enum>
  <packet family="Talk" action="Request">
    <comment>Requests a chat message be relayed.</comment>
    <length name="message_length" type="char" />
    <field name="message" type="string" length="message_length" />
    <field name="coords" type="Coords" />
    <field name="weapon_type" type="WeaponType" />
    <switch field="weapon_type">
      <case value="Melee">
        <field name="reach" type="char" />
      </case>
      <case default="true">
      </case>
    </switch>
  </packet>
</protocol>
`

func writeFixture(t *testing.T, root string) {
	t.Helper()
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "protocol.xml"), []byte(fixtureRootProtocol), 0o644); err != nil {
		t.Fatal(err)
	}

	clientDir := filepath.Join(root, "net", "client")
	if err := os.MkdirAll(clientDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(clientDir, "protocol.xml"), []byte(fixtureClientProtocol), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readGenerated(t *testing.T, outputRoot string, parts ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{outputRoot}, parts...)...)
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(raw)
}

func TestGenerateEnum(t *testing.T) {
	schemaRoot := t.TempDir()
	outputRoot := t.TempDir()
	writeFixture(t, schemaRoot)

	if err := Generate(schemaRoot, outputRoot); err != nil {
		t.Fatal(err)
	}

	src := readGenerated(t, outputRoot, "packet_family.go")
	if !strings.Contains(src, "type PacketFamily int") {
		t.Fatalf("expected PacketFamily enum type, got:\n%s", src)
	}
	if !strings.Contains(src, "PacketFamilyConnection PacketFamily = 1") {
		t.Fatalf("expected PacketFamilyConnection constant, got:\n%s", src)
	}
	if !strings.Contains(src, "PacketFamilyTalk PacketFamily = 16") {
		t.Fatalf("expected PacketFamilyTalk constant, got:\n%s", src)
	}
}

func TestGenerateStruct(t *testing.T) {
	schemaRoot := t.TempDir()
	outputRoot := t.TempDir()
	writeFixture(t, schemaRoot)

	if err := Generate(schemaRoot, outputRoot); err != nil {
		t.Fatal(err)
	}

	src := readGenerated(t, outputRoot, "coords.go")
	for _, want := range []string{
		"type Coords struct",
		"x int",
		"y int",
		"func (v *Coords) X() int",
		"return v.x",
		"func (v *Coords) SetX(x int)",
		"v.x = x",
		"func (result *Coords) Serialize(writer *data.EoWriter) error",
		"writer.AddShort(result.x)",
		"func DeserializeCoords(reader *data.EoReader) (*Coords, error)",
		"result.x = reader.GetShort()",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("expected generated Coords source to contain %q, got:\n%s", want, src)
		}
	}
}

func TestGenerateArrayLengthSync(t *testing.T) {
	schemaRoot := t.TempDir()
	outputRoot := t.TempDir()
	writeFixture(t, schemaRoot)

	if err := Generate(schemaRoot, outputRoot); err != nil {
		t.Fatal(err)
	}

	src := readGenerated(t, outputRoot, "nearby_info.go")
	for _, want := range []string{
		"type NearbyInfo struct",
		"itemsCount int",
		"items []int",
		"func (v *NearbyInfo) ItemsCount() int",
		"return v.itemsCount",
		"func (v *NearbyInfo) Items() []int",
		"func (v *NearbyInfo) SetItems(items []int)",
		"v.items = items",
		"v.itemsCount = len(items)",
		"for i := 0; i < result.itemsCount; i++",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("expected generated NearbyInfo source to contain %q, got:\n%s", want, src)
		}
	}

	// NearbyInfo has no setter for itemsCount: the only way to populate
	// the array's backing length is through SetItems.
	if strings.Contains(src, "func (v *NearbyInfo) SetItemsCount") {
		t.Fatalf("expected no SetItemsCount accessor, got:\n%s", src)
	}
}

func TestGeneratePacketWithSwitch(t *testing.T) {
	schemaRoot := t.TempDir()
	outputRoot := t.TempDir()
	writeFixture(t, schemaRoot)

	if err := Generate(schemaRoot, outputRoot); err != nil {
		t.Fatal(err)
	}

	src := readGenerated(t, outputRoot, "net", "client", "talk_request_client_packet.go")

	for _, want := range []string{
		"type TalkRequestClientPacket struct",
		"func (v *TalkRequestClientPacket) Family() protocol.PacketFamily",
		"return protocol.PacketFamilyTalk",
		"func (v *TalkRequestClientPacket) Action() protocol.PacketAction",
		"return protocol.PacketActionRequest",
		"type WeaponTypeData interface",
		"WeaponTypeDataMelee",
		"if result.weaponType == WeaponTypeMelee",
		"func (v *TalkRequestClientPacket) WeaponType() WeaponType",
		"func (v *TalkRequestClientPacket) SetWeaponType(weaponType WeaponType)",
		"func (v *TalkRequestClientPacket) WeaponTypeData() WeaponTypeData",
		"func (v *TalkRequestClientPacket) SetWeaponTypeData(weaponTypeData WeaponTypeData)",
		"func (v *TalkRequestClientPacket) MessageLength() int",
		"func (v *TalkRequestClientPacket) Message() string",
		"func (v *TalkRequestClientPacket) SetMessage(message string)",
		"v.messageLength = len(message)",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("expected generated packet source to contain %q, got:\n%s", want, src)
		}
	}
}

func TestClean(t *testing.T) {
	schemaRoot := t.TempDir()
	outputRoot := t.TempDir()
	writeFixture(t, schemaRoot)

	if err := Generate(schemaRoot, outputRoot); err != nil {
		t.Fatal(err)
	}

	handWritten := filepath.Join(outputRoot, "keep.go")
	if err := os.WriteFile(handWritten, []byte("package protocol\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Clean(outputRoot); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(outputRoot, "packet_family.go")); !os.IsNotExist(err) {
		t.Fatalf("expected generated file to be removed, stat error: %v", err)
	}
	if _, err := os.Stat(handWritten); err != nil {
		t.Fatalf("expected hand-written file to survive Clean: %v", err)
	}
}
