package constants

const (
	// ==========================================
	// 主菜單 (Main Menu)
	// ==========================================
	KeyMain_Start        = "1" // 啟動核心
	KeyMain_Stop         = "2" // 停止核心
	KeyMain_UpdateConfig = "3" // 更新配置
	KeyMain_Refresh      = "r" // 立即刷新
	KeyMain_Quit         = "0" // 退出程序

	// ==========================================
	// 配置輸入頁 (Config Editor)
	// ==========================================
	KeyEditor_Submit = "ctrl+s" // 提交
	KeyEditor_Cancel = "esc"    // 取消
)
