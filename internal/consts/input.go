package consts

// イベントタイプの定数（input-event-codes.hより）
const (
	Syn = 0x00 // 同期イベント
	Key = 0x01 // キーイベント
	Rel = 0x02 // 相対座標イベント
	Abs = 0x03 // 絶対座標イベント
)

// 同期イベントコード
const (
	SynReport  = 0x00 // イベント報告の区切り
	SynDropped = 0x03 // カーネルバッファ溢れによるイベント欠落
)

// 絶対座標軸コード（input-event-codes.hより）
const (
	AbsX        = 0x00 // X軸
	AbsY        = 0x01 // Y軸
	AbsZ        = 0x02 // Z軸
	AbsRX       = 0x03 // X軸まわりの回転
	AbsRY       = 0x04 // Y軸まわりの回転
	AbsRZ       = 0x05 // Z軸まわりの回転
	AbsThrottle = 0x06 // スロットル
	AbsRudder   = 0x07 // ラダー
	AbsWheel    = 0x08 // ホイール
	AbsGas      = 0x09 // アクセル
	AbsBrake    = 0x0a // ブレーキ
)

// キャリブレーション対象の軸ウィンドウ。AxisBase から連続する
// AxisCount 本の絶対座標軸を軸ID 0..AxisCount-1 に対応させる
const (
	AxisBase  = AbsX
	AxisCount = 12
)

// その他のデバイス制御用定数
const (
	AbsSize     = 0x40 // 絶対座標コードの総数（ビットマップの幅）
	MaxNameSize = 256  // デバイス名の最大サイズ
)
